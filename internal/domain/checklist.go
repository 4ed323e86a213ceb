package domain

import "time"

// Checklist is the domain entity for an assigned checklist.
// JSON tags double as the on-disk and wire format, so the stored
// files stay hand-editable.
type Checklist struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Assignee    string `json:"assignee"`

	// Items is the ordered list of step texts. Edits replace the whole
	// list; ItemsCompleted holds indices into it and is semantically a set.
	Items          []string `json:"items"`
	ItemsCompleted []int    `json:"itemsCompleted"`

	// Completed is derived: true iff Items is non-empty and every index
	// is present in ItemsCompleted. CompletedDate is set when Completed
	// transitions to true and cleared when it transitions back.
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completedDate"`

	Date time.Time `json:"date"`
}

// HasItemCompleted reports whether index i is in the completed set.
func (c Checklist) HasItemCompleted(i int) bool {
	for _, v := range c.ItemsCompleted {
		if v == i {
			return true
		}
	}
	return false
}

// AllItemsCompleted reports whether the checklist has items and all of
// them are toggled complete.
func (c Checklist) AllItemsCompleted() bool {
	return len(c.Items) > 0 && len(c.ItemsCompleted) == len(c.Items)
}
