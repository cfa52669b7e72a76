package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "todolist-backend/internal/auth/delivery"
	authUsecase "todolist-backend/internal/auth/usecase"
	todoDelivery "todolist-backend/internal/todo/delivery"
	todoUsecase "todolist-backend/internal/todo/usecase"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, todoUc todoUsecase.TodoUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	todoHandler := todoDelivery.NewTodoHandler(todoUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)

		// Todo routes (protected)
		todos := api.Group("/todos")
		todos.Use(authDelivery.AuthMiddleware(authUc))
		{
			todos.POST("", todoHandler.CreateTodo)
			todos.GET("", todoHandler.GetTodos)
			todos.PUT("/:id", todoHandler.UpdateTodo)
			todos.DELETE("/:id", todoHandler.DeleteTodo)
		}
	}
}
