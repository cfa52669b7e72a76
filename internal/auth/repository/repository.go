package repository

import "todolist-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user
	Create(user *domain.User) error

	// FindByEmail returns the user with the given email, or nil if absent
	FindByEmail(email string) (*domain.User, error)
}
