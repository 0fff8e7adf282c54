package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	// Setup health and root routes
	SetupHealthRoutes(app)

	// endpoint หลักอยู่ที่ root level ตาม contract ของ frontend เดิม
	SetupAuthRoutes(app, h)
	SetupTodoRoutes(app, h)
	SetupDashboardRoutes(app, h)
}
