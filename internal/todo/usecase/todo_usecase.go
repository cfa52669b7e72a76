package usecase

import (
	"context"
	"strings"
	"time"

	"todolist-backend/internal/shared"
	"todolist-backend/internal/todo/domain"
	"todolist-backend/internal/todo/dto"
	"todolist-backend/internal/todo/repository"
)

// dueDateLayout is the DD/MM/YYYY wire format for due dates.
const dueDateLayout = "02/01/2006"

// todoUsecase implements TodoUsecase interface
type todoUsecase struct {
	todoRepo repository.TodoRepository
	cache    ListCache // nil when no cache is configured
}

// NewTodoUsecase creates a new instance of todoUsecase
func NewTodoUsecase(todoRepo repository.TodoRepository, cache ListCache) TodoUsecase {
	return &todoUsecase{
		todoRepo: todoRepo,
		cache:    cache,
	}
}

// parseDueDate parses a DD/MM/YYYY literal as a UTC calendar date. The
// result is already start-of-day since the layout carries no time part.
func parseDueDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dueDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, shared.ErrInvalidDate
	}
	return t, nil
}

func (u *todoUsecase) Create(ctx context.Context, userID string, req *dto.CreateTodoRequest) (*domain.Todo, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, shared.ErrTitleRequired
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	todo := &domain.Todo{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Completed:   false,
		UserID:      userID,
	}

	if err := u.todoRepo.Create(todo); err != nil {
		return nil, err
	}

	if u.cache != nil {
		u.cache.Invalidate(ctx, userID)
	}
	return todo, nil
}

func (u *todoUsecase) List(ctx context.Context, userID string) ([]*domain.Todo, error) {
	if u.cache != nil {
		if todos, ok := u.cache.GetTodos(ctx, userID); ok {
			return todos, nil
		}
	}

	todos, err := u.todoRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []*domain.Todo{}
	}

	if u.cache != nil {
		u.cache.SetTodos(ctx, userID, todos)
	}
	return todos, nil
}

func (u *todoUsecase) Update(ctx context.Context, userID, todoID string, req *dto.UpdateTodoRequest) (*domain.Todo, error) {
	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, shared.ErrTitleRequired
		}
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Completed != nil {
		fields["completed"] = *req.Completed
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		fields["due_date"] = dueDate
	}

	// Ownership lives in the update predicate itself, never in a separate
	// fetch-then-check.
	todo, err := u.todoRepo.UpdateOwned(todoID, userID, fields)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		u.cache.Invalidate(ctx, userID)
	}
	return todo, nil
}

func (u *todoUsecase) Delete(ctx context.Context, userID, todoID string) error {
	if todoID == "" {
		return shared.ErrMissingTodoID
	}

	if err := u.todoRepo.DeleteOwned(todoID, userID); err != nil {
		return err
	}

	if u.cache != nil {
		u.cache.Invalidate(ctx, userID)
	}
	return nil
}

func (u *todoUsecase) SweepOverdue(ctx context.Context, now time.Time) (int64, error) {
	affected, err := u.todoRepo.MarkOverdueCompleted(now)
	if err != nil {
		return 0, err
	}

	if affected > 0 && u.cache != nil {
		u.cache.InvalidateAll(ctx)
	}
	return affected, nil
}
