package routes

import (
	"github.com/gofiber/fiber/v2"

	"todo-backend/interfaces/api/handlers"
	"todo-backend/interfaces/api/middleware"
)

// SetupTaskRoutes mounts the per-owner task tree. Every route is scoped by
// the :user_id path segment, which must match the authenticated subject.
func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	owner := api.Group("/:user_id")
	owner.Use(middleware.Protected(h.JWTSecret), middleware.RequireOwner())

	tasks := owner.Group("/tasks")
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/:task_id", h.TaskHandler.GetTask)
	tasks.Put("/:task_id", h.TaskHandler.UpdateTask)
	tasks.Patch("/:task_id/complete", h.TaskHandler.ToggleComplete)
	tasks.Delete("/:task_id", h.TaskHandler.DeleteTask)

	subtasks := tasks.Group("/:task_id/subtasks")
	subtasks.Get("/", h.SubtaskHandler.ListSubtasks)
	subtasks.Post("/", h.SubtaskHandler.CreateSubtask)
	subtasks.Put("/:subtask_id", h.SubtaskHandler.UpdateSubtask)
	subtasks.Delete("/:subtask_id", h.SubtaskHandler.DeleteSubtask)
}
