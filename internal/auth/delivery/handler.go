package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todolist-backend/internal/auth/dto"
	"todolist-backend/internal/auth/usecase"
	"todolist-backend/internal/shared"
	"todolist-backend/pkg/response"
)

// AuthHandler handles signup and login requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Signup creates a new user
// POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		response.Fail(c, http.StatusBadRequest, "Validation failed", errs)
		return
	}

	if err := h.authUsecase.Register(&req); err != nil {
		if errors.Is(err, shared.ErrEmailAlreadyExists) {
			response.Fail(c, http.StatusBadRequest, "User already exists", nil)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to create user", err.Error())
		return
	}

	response.OK(c, http.StatusCreated, "User created successfully", nil)
}

// Login verifies credentials and returns an access token
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}

	token, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to login", err.Error())
		return
	}

	response.Token(c, http.StatusOK, "Login successful", token)
}
