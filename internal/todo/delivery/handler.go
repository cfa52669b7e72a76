package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todolist-backend/internal/shared"
	"todolist-backend/internal/todo/dto"
	"todolist-backend/internal/todo/usecase"
	"todolist-backend/pkg/response"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoUsecase usecase.TodoUsecase
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoUsecase usecase.TodoUsecase) *TodoHandler {
	return &TodoHandler{
		todoUsecase: todoUsecase,
	}
}

func isValidationErr(err error) bool {
	return errors.Is(err, shared.ErrTitleRequired) || errors.Is(err, shared.ErrInvalidDate)
}

// CreateTodo creates a new todo for the authenticated user
// POST /api/todos
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	todo, err := h.todoUsecase.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if isValidationErr(err) {
			response.Fail(c, http.StatusBadRequest, "Validation failed", err.Error())
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to create todo", err.Error())
		return
	}

	response.OK(c, http.StatusCreated, "Todo created successfully", todo)
}

// GetTodos returns all todos for the authenticated user
// GET /api/todos
func (h *TodoHandler) GetTodos(c *gin.Context) {
	userID := c.GetString("userID")

	todos, err := h.todoUsecase.List(c.Request.Context(), userID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to retrieve todos", err.Error())
		return
	}

	response.OK(c, http.StatusOK, "Todos retrieved successfully", todos)
}

// UpdateTodo applies a partial update to an owned todo
// PUT /api/todos/:id
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	userID := c.GetString("userID")
	todoID := c.Param("id")

	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	todo, err := h.todoUsecase.Update(c.Request.Context(), userID, todoID, &req)
	if err != nil {
		if isValidationErr(err) {
			response.Fail(c, http.StatusBadRequest, "Validation failed", err.Error())
			return
		}
		if errors.Is(err, shared.ErrTodoNotFound) {
			response.Fail(c, http.StatusNotFound, "Todo not found", nil)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to update todo", err.Error())
		return
	}

	response.OK(c, http.StatusOK, "Todo updated successfully", todo)
}

// DeleteTodo removes an owned todo
// DELETE /api/todos/:id
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	userID := c.GetString("userID")
	todoID := c.Param("id")

	err := h.todoUsecase.Delete(c.Request.Context(), userID, todoID)
	if err != nil {
		if errors.Is(err, shared.ErrMissingTodoID) {
			response.Fail(c, http.StatusBadRequest, "Todo ID is missing in the URL", nil)
			return
		}
		if errors.Is(err, shared.ErrTodoNotFound) {
			response.Fail(c, http.StatusNotFound, "Todo not found", nil)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete todo", err.Error())
		return
	}

	response.OK(c, http.StatusOK, "Todo deleted successfully", nil)
}
