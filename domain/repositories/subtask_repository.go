package repositories

import (
	"context"

	"todo-backend/domain/models"
)

// SubtaskRepository scopes every lookup by parent task ID. Parent ownership
// is verified by the service layer before any of these run.
type SubtaskRepository interface {
	Create(ctx context.Context, subtask *models.Subtask) error
	GetByID(ctx context.Context, taskID, subtaskID uint) (*models.Subtask, error)
	ListByTaskID(ctx context.Context, taskID uint) ([]*models.Subtask, error)
	Update(ctx context.Context, subtask *models.Subtask) error
	Delete(ctx context.Context, taskID, subtaskID uint) error
}
