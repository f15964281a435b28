package dto

import (
	"time"
)

type CreateSubtaskRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=255"`
	Completed bool   `json:"completed"`
}

// UpdateSubtaskRequest uses the same merge-patch convention as tasks.
type UpdateSubtaskRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=255"`
	Completed *bool   `json:"completed"`
}

type SubtaskResponse struct {
	ID        uint      `json:"id"`
	TaskID    uint      `json:"task_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
