package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todolist-backend/internal/auth/usecase"
	"todolist-backend/pkg/response"
)

// AuthMiddleware guards a route group with bearer token verification and
// stores the authenticated user id in the request context.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, "Unauthorized", "authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Fail(c, http.StatusUnauthorized, "Unauthorized", "invalid authorization header format")
			c.Abort()
			return
		}

		userID, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "Unauthorized", "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
