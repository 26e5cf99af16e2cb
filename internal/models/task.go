package model

import (
	"time"

	"taskflow.com/taskflow/internal/constants"
)

type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	Title       string                 `gorm:"not null" json:"title"`
	Description string                 `gorm:"not null" json:"description"`
	Status      constants.TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	Priority    constants.TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	DueDate     *time.Time             `json:"due_date,omitempty"`
	UserID      *string                `gorm:"size:36;index" json:"user_id,omitempty"`
	User        *User                  `json:"user,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
