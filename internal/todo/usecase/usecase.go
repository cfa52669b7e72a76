package usecase

import (
	"context"
	"time"

	"todolist-backend/internal/todo/domain"
	"todolist-backend/internal/todo/dto"
)

// TodoUsecase defines the interface for todo business logic
type TodoUsecase interface {
	// Create parses and persists a new todo for the owner
	Create(ctx context.Context, userID string, req *dto.CreateTodoRequest) (*domain.Todo, error)

	// List returns all todos owned by the user (empty slice, never nil)
	List(ctx context.Context, userID string) ([]*domain.Todo, error)

	// Update applies a partial update to an owned todo
	Update(ctx context.Context, userID, todoID string, req *dto.UpdateTodoRequest) (*domain.Todo, error)

	// Delete removes an owned todo
	Delete(ctx context.Context, userID, todoID string) error

	// SweepOverdue bulk-completes every incomplete todo due at or before now
	SweepOverdue(ctx context.Context, now time.Time) (int64, error)
}

// ListCache is the optional read cache for per-user todo lists.
type ListCache interface {
	GetTodos(ctx context.Context, userID string) ([]*domain.Todo, bool)
	SetTodos(ctx context.Context, userID string, todos []*domain.Todo)
	Invalidate(ctx context.Context, userID string)
	InvalidateAll(ctx context.Context)
}
