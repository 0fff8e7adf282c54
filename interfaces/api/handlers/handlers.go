package handlers

import (
	"taskboard/domain/ports"
	"taskboard/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService      services.UserService
	TodoService      services.TodoService
	DashboardService services.DashboardService
	StoragePort      ports.StoragePort // สำหรับ avatar upload
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	TodoHandler      *TodoHandler
	DashboardHandler *DashboardHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:      NewAuthHandler(services.UserService),
		UserHandler:      NewUserHandler(services.UserService, services.StoragePort),
		TodoHandler:      NewTodoHandler(services.TodoService),
		DashboardHandler: NewDashboardHandler(services.DashboardService),
	}
}
