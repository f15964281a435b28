package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, userID string, taskID uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&tasks).Error
	return tasks, err
}

// Update writes all content columns, zero values included, so a merge-patch
// that clears a field actually clears it. The (id, user_id) filter keeps the
// write owner-scoped regardless of what the caller already checked.
func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	result := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Select("title", "description", "completed", "priority", "category", "due_date", "updated_at").
		Updates(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) SetCompleted(ctx context.Context, userID string, taskID uint, completed bool) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Task{}).
			Where("id = ? AND user_id = ?", taskID, userID).
			UpdateColumn("completed", completed)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repositories.ErrTaskNotFound
		}
		return tx.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, userID string, taskID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", taskID, userID).Delete(&models.Task{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repositories.ErrTaskNotFound
		}
		// Cascade; the FK constraint also covers this on postgres, but the
		// explicit delete keeps sqlite behavior identical.
		return tx.Where("task_id = ?", taskID).Delete(&models.Subtask{}).Error
	})
}
