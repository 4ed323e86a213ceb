package dto

// CreateChecklistRequest is the JSON body for POST /api/checklists.
// Absent fields are treated as empty rather than rejected; the stored
// contract has no schema validation beyond what the types impose.
type CreateChecklistRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Assignee    string   `json:"assignee"`
	Items       []string `json:"items"`
}

// UpdateChecklistRequest is the JSON body for PUT /api/checklists/:id.
// nil = leave as stored. id and date in the body are ignored.
type UpdateChecklistRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Assignee       *string    `json:"assignee"`
	Items          *[]string  `json:"items"`
	ItemsCompleted *[]int     `json:"itemsCompleted"`
	Completed      *bool      `json:"completed"`
	CompletedDate  *Timestamp `json:"completedDate"`
}

// UpdateStatusRequest is the JSON body for PUT /api/checklists/:id/status.
// CompletedDate is only applied when present.
type UpdateStatusRequest struct {
	Completed     bool       `json:"completed"`
	CompletedDate *Timestamp `json:"completedDate"`
}

// ToggleItemRequest is the JSON body for PUT /api/checklists/:id/items.
type ToggleItemRequest struct {
	ItemIndex *int `json:"itemIndex" binding:"required"`
	Completed bool `json:"completed"`
}

// SuccessResponse is the generic mutation acknowledgement.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ToggleItemResponse acknowledges an item toggle with the derived
// aggregate state.
type ToggleItemResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Progress  int    `json:"progress"`
	Completed bool   `json:"completed"`
}

// ErrorResponse is the error body for 4xx/5xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
