package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
)

func SetupTodoRoutes(app *fiber.App, h *handlers.Handlers) {
	todos := app.Group("/todos")

	todos.Get("/", h.TodoHandler.ListTodos)
	todos.Post("/", h.TodoHandler.CreateTodo)
	todos.Patch("/", h.TodoHandler.UpdateStatus)
	todos.Put("/", h.TodoHandler.UpdateTodo)
	todos.Delete("/", h.TodoHandler.DeleteTodo)
}
