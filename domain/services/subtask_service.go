package services

import (
	"context"

	"todo-backend/domain/dto"
	"todo-backend/domain/models"
)

// SubtaskService verifies parent task ownership before every operation.
// A missing or foreign parent yields ErrTaskNotFound; a subtask under a
// different parent yields ErrSubtaskNotFound.
type SubtaskService interface {
	ListSubtasks(ctx context.Context, userID string, taskID uint) ([]*models.Subtask, error)
	CreateSubtask(ctx context.Context, userID string, taskID uint, req *dto.CreateSubtaskRequest) (*models.Subtask, error)
	UpdateSubtask(ctx context.Context, userID string, taskID, subtaskID uint, req *dto.UpdateSubtaskRequest) (*models.Subtask, error)
	DeleteSubtask(ctx context.Context, userID string, taskID, subtaskID uint) error
}
