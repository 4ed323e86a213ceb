package dto

// CreateFeedbackRequest is the JSON body for POST /api/feedbacks.
type CreateFeedbackRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Assignee string `json:"assignee"`
}

// UpdateFeedbackRequest is the JSON body for PUT /api/feedbacks/:id.
// nil = leave as stored. id and date in the body are ignored.
type UpdateFeedbackRequest struct {
	Title    *string `json:"title"`
	Message  *string `json:"message"`
	Assignee *string `json:"assignee"`
}
