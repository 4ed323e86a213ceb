package domain

import "time"

// Feedback is a timestamped note directed at a named assignee.
type Feedback struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Assignee string    `json:"assignee"`
	Date     time.Time `json:"date"`
}
