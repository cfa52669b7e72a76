package repository

import (
	"time"

	"todolist-backend/internal/todo/domain"
)

// TodoRepository defines the interface for todo data access. Every
// owner-facing operation keys on both the todo id and the owner id in one
// predicate, so a todo belonging to someone else is indistinguishable from
// a missing one.
type TodoRepository interface {
	// Create persists a new todo
	Create(todo *domain.Todo) error

	// FindByUserID returns all todos owned by a user
	FindByUserID(userID string) ([]*domain.Todo, error)

	// UpdateOwned applies the given column updates to the todo matching
	// both id and owner and returns the post-update record. Returns
	// shared.ErrTodoNotFound when nothing matches.
	UpdateOwned(id, userID string, fields map[string]interface{}) (*domain.Todo, error)

	// DeleteOwned removes the todo matching both id and owner. Returns
	// shared.ErrTodoNotFound when nothing matches.
	DeleteOwned(id, userID string) error

	// MarkOverdueCompleted completes every incomplete todo whose due date
	// is at or before now, in one bulk update. Returns the number of rows
	// changed.
	MarkOverdueCompleted(now time.Time) (int64, error)
}
