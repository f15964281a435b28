package repositories

import (
	"context"
	"errors"

	"todo-backend/domain/models"
)

// Not-found sentinels. A resource owned by somebody else resolves to the same
// error as one that does not exist, so existence never leaks across owners.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrSubtaskNotFound = errors.New("subtask not found")
	ErrProfileNotFound = errors.New("profile not found")
)

// TaskRepository scopes every operation by owner. There is no way to reach a
// task without supplying the owning user ID; the HTTP-layer ownership check
// is not trusted as the sole guard.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, userID string, taskID uint) (*models.Task, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	// SetCompleted writes only the completed column. UpdatedAt is left alone.
	SetCompleted(ctx context.Context, userID string, taskID uint, completed bool) (*models.Task, error)
	// Delete removes the task and all its subtasks in one transaction.
	Delete(ctx context.Context, userID string, taskID uint) error
}
