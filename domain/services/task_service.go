package services

import (
	"context"

	"todo-backend/domain/dto"
	"todo-backend/domain/models"
)

type TaskService interface {
	ListTasks(ctx context.Context, userID string) ([]*models.Task, error)
	CreateTask(ctx context.Context, userID string, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, userID string, taskID uint) (*models.Task, error)
	UpdateTask(ctx context.Context, userID string, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error)
	// ToggleComplete sets only the completed flag. It does not advance
	// UpdatedAt; status changes are distinct from content changes.
	ToggleComplete(ctx context.Context, userID string, taskID uint, completed bool) (*models.Task, error)
	DeleteTask(ctx context.Context, userID string, taskID uint) error
}
