package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"todolist-backend/internal/auth/domain"
	"todolist-backend/internal/auth/dto"
	"todolist-backend/internal/auth/usecase"
	"todolist-backend/pkg/config"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(user *domain.User) error {
	if user.ID == "" {
		user.ID = "uid-1"
	}
	r.users[user.Email] = user
	return nil
}

func (r *stubUserRepo) FindByEmail(email string) (*domain.User, error) {
	return r.users[email], nil
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "test-secret", JWTAccessExpiry: time.Hour}
	uc := usecase.NewAuthUsecase(&stubUserRepo{users: make(map[string]*domain.User)}, cfg)

	if err := uc.Register(&dto.SignupRequest{Email: "u@test.com", Password: "Abc1!def"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	token, err := uc.Login(&dto.LoginRequest{Email: "u@test.com", Password: "Abc1!def"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	r := gin.New()
	r.GET("/protected", AuthMiddleware(uc), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("userID"))
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid bearer token",
			authHeader: "Bearer " + token,
			wantStatus: http.StatusOK,
			wantBody:   "uid-1",
		},
		{
			name:       "missing authorization header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing Bearer prefix",
			authHeader: token,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic " + token,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.jwt",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", http.NoBody)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, rec.Body.String())
			}
		})
	}
}
