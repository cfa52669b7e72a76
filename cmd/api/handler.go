package api

import (
	"github.com/gin-gonic/gin"

	authUsecase "todolist-backend/internal/auth/usecase"
	todoUsecase "todolist-backend/internal/todo/usecase"
	"todolist-backend/pkg/config"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	todoUsecase todoUsecase.TodoUsecase
	config      *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, todoUc todoUsecase.TodoUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase: authUc,
		todoUsecase: todoUc,
		config:      cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.todoUsecase)

	return r.Run(addr)
}
