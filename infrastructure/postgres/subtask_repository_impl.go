package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
)

type SubtaskRepositoryImpl struct {
	db *gorm.DB
}

func NewSubtaskRepository(db *gorm.DB) repositories.SubtaskRepository {
	return &SubtaskRepositoryImpl{db: db}
}

func (r *SubtaskRepositoryImpl) Create(ctx context.Context, subtask *models.Subtask) error {
	return r.db.WithContext(ctx).Create(subtask).Error
}

// GetByID filters by (id, task_id) jointly; a subtask living under another
// task resolves as not found.
func (r *SubtaskRepositoryImpl) GetByID(ctx context.Context, taskID, subtaskID uint) (*models.Subtask, error) {
	var subtask models.Subtask
	err := r.db.WithContext(ctx).
		Where("id = ? AND task_id = ?", subtaskID, taskID).
		First(&subtask).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrSubtaskNotFound
		}
		return nil, err
	}
	return &subtask, nil
}

func (r *SubtaskRepositoryImpl) ListByTaskID(ctx context.Context, taskID uint) ([]*models.Subtask, error) {
	var subtasks []*models.Subtask
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Find(&subtasks).Error
	return subtasks, err
}

func (r *SubtaskRepositoryImpl) Update(ctx context.Context, subtask *models.Subtask) error {
	result := r.db.WithContext(ctx).Model(&models.Subtask{}).
		Where("id = ? AND task_id = ?", subtask.ID, subtask.TaskID).
		Select("title", "completed", "updated_at").
		Updates(subtask)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrSubtaskNotFound
	}
	return nil
}

func (r *SubtaskRepositoryImpl) Delete(ctx context.Context, taskID, subtaskID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND task_id = ?", subtaskID, taskID).
		Delete(&models.Subtask{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrSubtaskNotFound
	}
	return nil
}
