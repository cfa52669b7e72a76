package shared

import "errors"

var (
	// auth-specific errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrEmailAlreadyExists = errors.New("user already exists")

	// todo-specific errors
	ErrTodoNotFound  = errors.New("todo not found")
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidDate   = errors.New("invalid due date, expected DD/MM/YYYY")
	ErrMissingTodoID = errors.New("todo id is missing")
)

// FieldError is a single per-field validation failure, reported to the
// client in the response envelope's error array.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
