package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
)

func SetupDashboardRoutes(app *fiber.App, h *handlers.Handlers) {
	dashboard := app.Group("/dashboard")

	dashboard.Get("/summary", h.DashboardHandler.GetSummary)
	dashboard.Get("/focus", h.DashboardHandler.GetFocus)
	dashboard.Get("/planner", h.DashboardHandler.GetPlanner)
	dashboard.Get("/recent", h.DashboardHandler.GetRecent)
}
