package dto

import (
	"todo-backend/domain/models"
)

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    task.Priority,
		Category:    task.Category,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToTaskResponse(task)
	}
	return responses
}

func SubtaskToSubtaskResponse(subtask *models.Subtask) *SubtaskResponse {
	if subtask == nil {
		return nil
	}
	return &SubtaskResponse{
		ID:        subtask.ID,
		TaskID:    subtask.TaskID,
		Title:     subtask.Title,
		Completed: subtask.Completed,
		CreatedAt: subtask.CreatedAt,
		UpdatedAt: subtask.UpdatedAt,
	}
}

func SubtasksToSubtaskResponses(subtasks []*models.Subtask) []SubtaskResponse {
	responses := make([]SubtaskResponse, len(subtasks))
	for i, subtask := range subtasks {
		responses[i] = *SubtaskToSubtaskResponse(subtask)
	}
	return responses
}

func ProfileToProfileResponse(profile *models.Profile) *ProfileResponse {
	if profile == nil {
		return nil
	}
	return &ProfileResponse{
		ID:    profile.ID,
		Email: profile.Email,
		Name:  profile.Name,
	}
}
