package usecase

import "todolist-backend/internal/auth/dto"

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new user with a hashed password
	Register(req *dto.SignupRequest) error

	// Login verifies credentials and returns a signed access token
	Login(req *dto.LoginRequest) (string, error)

	// ValidateToken verifies a token and returns the embedded user id
	ValidateToken(tokenString string) (string, error)
}
