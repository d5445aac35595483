package dto

// AddTodoRequest creates a checklist item
type AddTodoRequest struct {
	TripID int    `json:"trip_id"`
	TodoID string `json:"todo_id"`
	Text   string `json:"text"`
}

// UpdateTodoRequest rewrites a checklist item's text and/or checked state
type UpdateTodoRequest struct {
	TripID  int     `json:"trip_id"`
	TodoID  string  `json:"todo_id"`
	Text    *string `json:"text"`
	Checked *bool   `json:"checked"`
}

// DeleteTodoRequest removes a checklist item (host only)
type DeleteTodoRequest struct {
	TripID int    `json:"trip_id"`
	TodoID string `json:"todo_id"`
}

// TodoItem is one listed checklist item
type TodoItem struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	Checked       bool   `json:"checked"`
	LastUpdatedBy string `json:"last_updated_by"`
	LastUpdatedAt string `json:"last_updated_at"`
}

// GetTodosResponse envelope
type GetTodosResponse struct {
	Todos []TodoItem `json:"todos"`
}
