package dto

import (
	"time"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    string     `json:"category" validate:"omitempty,max=50"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskRequest is a merge-patch: nil means "leave untouched", so every
// field is a pointer. A present-but-empty title is rejected by validation.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    *string    `json:"category" validate:"omitempty,max=50"`
	DueDate     *time.Time `json:"due_date"`
}

type ToggleCompleteRequest struct {
	Completed bool `json:"completed"`
}

type TaskResponse struct {
	ID          uint       `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
