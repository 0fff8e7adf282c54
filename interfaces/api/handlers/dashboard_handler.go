package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskboard/domain/models"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) parseUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr := c.Query("userId")
	if userIDStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "userId is required")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid userId")
	}
	return userID, nil
}

func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := h.parseUserID(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboardService.Summary(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build dashboard summary", "user_id", userID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, summary)
}

func (h *DashboardHandler) GetFocus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := h.parseUserID(c)
	if err != nil {
		return err
	}

	todos, err := h.dashboardService.Focus(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build focus queue", "user_id", userID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	if todos == nil {
		todos = []models.Todo{}
	}
	return utils.SuccessResponse(c, todos)
}

func (h *DashboardHandler) GetPlanner(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := h.parseUserID(c)
	if err != nil {
		return err
	}

	plan, err := h.dashboardService.Planner(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build weekly plan", "user_id", userID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, plan)
}

func (h *DashboardHandler) GetRecent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := h.parseUserID(c)
	if err != nil {
		return err
	}

	todos, err := h.dashboardService.Recent(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build recent activity", "user_id", userID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	if todos == nil {
		todos = []models.Todo{}
	}
	return utils.SuccessResponse(c, todos)
}
