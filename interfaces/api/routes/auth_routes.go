package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
	"taskboard/interfaces/api/middleware"
)

func SetupAuthRoutes(app *fiber.App, h *handlers.Handlers) {
	auth := app.Group("/auth")

	auth.Post("/register", h.AuthHandler.Register)
	auth.Post("/login", h.AuthHandler.Login)

	// Reset password flow: verify username ก่อนแล้วค่อยตั้งรหัสใหม่
	auth.Post("/verify-email", h.AuthHandler.VerifyUsername)
	auth.Post("/reset-password", h.AuthHandler.ResetPassword)

	// Protected routes - require authentication
	auth.Get("/me", middleware.Protected(), h.UserHandler.GetProfile)
	auth.Post("/me/avatar", middleware.Protected(), h.UserHandler.UploadAvatar)
	auth.Post("/logout", middleware.Protected(), h.AuthHandler.Logout)
}
