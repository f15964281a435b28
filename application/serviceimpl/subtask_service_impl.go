package serviceimpl

import (
	"context"
	"time"

	"todo-backend/domain/dto"
	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
)

type SubtaskServiceImpl struct {
	taskRepo    repositories.TaskRepository
	subtaskRepo repositories.SubtaskRepository
}

func NewSubtaskService(taskRepo repositories.TaskRepository, subtaskRepo repositories.SubtaskRepository) services.SubtaskService {
	return &SubtaskServiceImpl{
		taskRepo:    taskRepo,
		subtaskRepo: subtaskRepo,
	}
}

// checkParent verifies the parent task exists under this owner. Every
// subtask operation goes through here first.
func (s *SubtaskServiceImpl) checkParent(ctx context.Context, userID string, taskID uint) error {
	_, err := s.taskRepo.GetByID(ctx, userID, taskID)
	return err
}

func (s *SubtaskServiceImpl) ListSubtasks(ctx context.Context, userID string, taskID uint) ([]*models.Subtask, error) {
	if err := s.checkParent(ctx, userID, taskID); err != nil {
		return nil, err
	}

	subtasks, err := s.subtaskRepo.ListByTaskID(ctx, taskID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list subtasks", "task_id", taskID, "error", err)
		return nil, err
	}
	return subtasks, nil
}

func (s *SubtaskServiceImpl) CreateSubtask(ctx context.Context, userID string, taskID uint, req *dto.CreateSubtaskRequest) (*models.Subtask, error) {
	if err := s.checkParent(ctx, userID, taskID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	subtask := &models.Subtask{
		TaskID:    taskID,
		Title:     req.Title,
		Completed: req.Completed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.subtaskRepo.Create(ctx, subtask); err != nil {
		logger.ErrorContext(ctx, "Failed to create subtask", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Subtask created", "subtask_id", subtask.ID, "task_id", taskID)

	return subtask, nil
}

func (s *SubtaskServiceImpl) UpdateSubtask(ctx context.Context, userID string, taskID, subtaskID uint, req *dto.UpdateSubtaskRequest) (*models.Subtask, error) {
	if err := s.checkParent(ctx, userID, taskID); err != nil {
		return nil, err
	}

	subtask, err := s.subtaskRepo.GetByID(ctx, taskID, subtaskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		subtask.Title = *req.Title
	}
	if req.Completed != nil {
		subtask.Completed = *req.Completed
	}

	subtask.UpdatedAt = time.Now().UTC()

	if err := s.subtaskRepo.Update(ctx, subtask); err != nil {
		logger.ErrorContext(ctx, "Failed to update subtask", "subtask_id", subtaskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Subtask updated", "subtask_id", subtaskID, "task_id", taskID)

	return subtask, nil
}

func (s *SubtaskServiceImpl) DeleteSubtask(ctx context.Context, userID string, taskID, subtaskID uint) error {
	if err := s.checkParent(ctx, userID, taskID); err != nil {
		return err
	}

	if err := s.subtaskRepo.Delete(ctx, taskID, subtaskID); err != nil {
		if err != repositories.ErrSubtaskNotFound {
			logger.ErrorContext(ctx, "Failed to delete subtask", "subtask_id", subtaskID, "error", err)
		}
		return err
	}

	logger.InfoContext(ctx, "Subtask deleted", "subtask_id", subtaskID, "task_id", taskID)

	return nil
}
