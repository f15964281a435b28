package models

import (
	"time"
)

// Subtask is a checklist item bound to exactly one task. It is only
// reachable through its parent task's ownership chain.
type Subtask struct {
	ID        uint      `gorm:"primaryKey"`
	TaskID    uint      `gorm:"not null;index"`
	Task      Task      `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Title     string    `gorm:"size:255;not null"`
	Completed bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (Subtask) TableName() string {
	return "subtasks"
}
