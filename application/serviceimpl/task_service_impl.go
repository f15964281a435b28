package serviceimpl

import (
	"context"
	"time"

	"todo-backend/domain/dto"
	"todo-backend/domain/models"
	"todo-backend/domain/ports"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo  repositories.TaskRepository
	publisher ports.EventPublisher
}

func NewTaskService(taskRepo repositories.TaskRepository, publisher ports.EventPublisher) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:  taskRepo,
		publisher: publisher,
	}
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID string) ([]*models.Task, error) {
	tasks, err := s.taskRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", userID, "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID string, req *dto.CreateTaskRequest) (*models.Task, error) {
	now := time.Now().UTC()

	task := &models.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
		Category:    req.Category,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID)

	s.emit(ctx, s.publisher.TaskCreated, task)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, userID string, taskID uint) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, userID, taskID)
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID string, taskID uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	// Merge-patch: only fields present in the request are applied.
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	task.UpdatedAt = time.Now().UTC()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) ToggleComplete(ctx context.Context, userID string, taskID uint, completed bool) (*models.Task, error) {
	task, err := s.taskRepo.SetCompleted(ctx, userID, taskID, completed)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Task completion toggled", "task_id", taskID, "completed", completed)

	if completed {
		s.emit(ctx, s.publisher.TaskCompleted, task)
	}

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID string, taskID uint) error {
	task, err := s.taskRepo.GetByID(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, userID, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)

	s.emit(ctx, s.publisher.TaskDeleted, task)

	return nil
}

// emit publishes fire-and-forget; the publisher logs its own failures and
// nothing propagates to the request path.
func (s *TaskServiceImpl) emit(ctx context.Context, publish func(context.Context, *ports.TaskEvent) error, task *models.Task) {
	_ = publish(ctx, &ports.TaskEvent{
		TaskID:    task.ID,
		UserID:    task.UserID,
		Title:     task.Title,
		Completed: task.Completed,
	})
}
