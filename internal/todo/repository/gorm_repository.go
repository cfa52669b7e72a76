package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todolist-backend/internal/shared"
	"todolist-backend/internal/todo/domain"
)

// gormTodoRepository implements TodoRepository using GORM
type gormTodoRepository struct {
	db *gorm.DB
}

// NewGormTodoRepository creates a new GORM-based TodoRepository
func NewGormTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{db: db}
}

func (r *gormTodoRepository) Create(todo *domain.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	todo.CreatedAt = time.Now()
	todo.UpdatedAt = time.Now()
	return r.db.Create(todo).Error
}

func (r *gormTodoRepository) FindByUserID(userID string) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	err := r.db.Where("user_id = ?", userID).Find(&todos).Error
	return todos, err
}

func (r *gormTodoRepository) UpdateOwned(id, userID string, fields map[string]interface{}) (*domain.Todo, error) {
	result := r.db.Model(&domain.Todo{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrTodoNotFound
	}

	var todo domain.Todo
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}

func (r *gormTodoRepository) DeleteOwned(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Todo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrTodoNotFound
	}
	return nil
}

func (r *gormTodoRepository) MarkOverdueCompleted(now time.Time) (int64, error) {
	result := r.db.Model(&domain.Todo{}).
		Where("due_date <= ? AND completed = ?", now, false).
		Updates(map[string]interface{}{"completed": true, "updated_at": time.Now()})
	return result.RowsAffected, result.Error
}
