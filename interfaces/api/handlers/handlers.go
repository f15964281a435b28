package handlers

import (
	"todo-backend/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	AuthService    services.AuthService
	ProfileService services.ProfileService
	TaskService    services.TaskService
	SubtaskService services.SubtaskService
	JWTSecret      string
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	TaskHandler    *TaskHandler
	SubtaskHandler *SubtaskHandler
	JWTSecret      string
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:    NewAuthHandler(services.AuthService),
		UserHandler:    NewUserHandler(services.ProfileService),
		TaskHandler:    NewTaskHandler(services.TaskService),
		SubtaskHandler: NewSubtaskHandler(services.SubtaskService),
		JWTSecret:      services.JWTSecret,
	}
}
