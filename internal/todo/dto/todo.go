package dto

// CreateTodoRequest represents the request body for creating a todo.
// DueDate is a DD/MM/YYYY literal.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

// UpdateTodoRequest represents the fields that can be updated. Absent
// fields leave the stored values unchanged.
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}
