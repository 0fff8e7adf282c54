package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type TodoHandler struct {
	todoService services.TodoService
}

func NewTodoHandler(todoService services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// client เก่าส่ง userId/todoId มาทาง query แทน body ได้
func fillFromQuery(c *fiber.Ctx, userID *string, todoID *dto.FlexibleID) {
	if *userID == "" {
		*userID = c.Query("userId")
	}
	if todoID != nil && *todoID == 0 {
		if raw := c.Query("todoId"); raw != "" {
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
				*todoID = dto.FlexibleID(n)
			}
		}
	}
}

func (h *TodoHandler) ListTodos(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userIDStr := c.Query("userId")
	if userIDStr == "" {
		return utils.BadRequestResponse(c, "userId is required")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		logger.WarnContext(ctx, "Invalid user ID", "user_id", userIDStr)
		return utils.BadRequestResponse(c, "Invalid userId")
	}

	todos, err := h.todoService.List(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list todos", "user_id", userID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	if todos == nil {
		todos = []models.Todo{}
	}

	// list ตอบ array ตรง ๆ ไม่ห่อ envelope
	return utils.SuccessResponse(c, todos)
}

func (h *TodoHandler) CreateTodo(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	fillFromQuery(c, &req.UserID, nil)

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid userId")
	}

	todo, err := h.todoService.Create(ctx, userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyTask) {
			return utils.BadRequestResponse(c, "Task description is required")
		}
		logger.ErrorContext(ctx, "Failed to create todo", "user_id", userID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Todo created", "user_id", userID, "todo_id", todo.ID)

	return utils.CreatedResponse(c, dto.TodoMutationResponse{
		Message: "Task created",
		Result:  todo,
	})
}

func (h *TodoHandler) UpdateStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	fillFromQuery(c, &req.UserID, &req.TodoID)

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid userId")
	}

	todo, err := h.todoService.SetCompleted(ctx, userID, req.TodoID.Int64(), *req.Completed)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update todo status", "user_id", userID, "todo_id", req.TodoID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	// entry หายไปแล้วก็ตอบสำเร็จ result เป็น null
	return utils.SuccessResponse(c, dto.TodoMutationResponse{
		Message: "Task status updated",
		Result:  todo,
	})
}

func (h *TodoHandler) UpdateTodo(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.UpdateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	fillFromQuery(c, &req.UserID, &req.TodoID)

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid userId")
	}

	todo, err := h.todoService.UpdateFields(ctx, userID, req.TodoID.Int64(), req.Fields())
	if err != nil {
		if errors.Is(err, services.ErrEmptyUpdate) {
			return utils.BadRequestResponse(c, "No updatable fields provided")
		}
		logger.ErrorContext(ctx, "Failed to update todo", "user_id", userID, "todo_id", req.TodoID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TodoMutationResponse{
		Message: "Task updated",
		Result:  todo,
	})
}

func (h *TodoHandler) DeleteTodo(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.DeleteTodoRequest
	// DELETE อาจไม่มี body เลย ใช้ query ล้วนก็ได้
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	fillFromQuery(c, &req.UserID, &req.TodoID)

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid userId")
	}

	todo, err := h.todoService.Delete(ctx, userID, req.TodoID.Int64())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete todo", "user_id", userID, "todo_id", req.TodoID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	if todo != nil {
		logger.InfoContext(ctx, "Todo deleted", "user_id", userID, "todo_id", todo.ID)
	}

	return utils.SuccessResponse(c, dto.TodoMutationResponse{
		Message: "Task deleted",
		Result:  todo,
	})
}
