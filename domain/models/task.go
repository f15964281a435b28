package models

import (
	"time"
)

// Task priorities. Stored as plain strings, validated at the DTO boundary.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a todo item owned by exactly one subject. UserID is set at creation
// and never changes.
//
// Timestamp tracking is disabled on the gorm side: the service layer owns
// both columns, because a completion toggle must leave UpdatedAt untouched
// while a content update must advance it.
type Task struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      string `gorm:"size:255;not null;index"`
	Title       string `gorm:"size:255;not null"`
	Description string
	Completed   bool       `gorm:"default:false"`
	Priority    string     `gorm:"size:10;default:'medium'"`
	Category    string     `gorm:"size:50"`
	DueDate     *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

func (Task) TableName() string {
	return "tasks"
}
