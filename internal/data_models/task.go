package dto

import (
	"time"

	"taskflow.com/taskflow/internal/constants"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *time.Time `json:"due_date"`
	UserID      string     `json:"user_id" validate:"omitempty,uuid4"`
}

// UpdateTaskRequest is a partial patch: zero-value fields are treated
// as not provided and left unchanged on the task.
type UpdateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *time.Time `json:"due_date"`
}

type ListTasksFilter struct {
	Status   constants.TaskStatus
	Priority constants.TaskPriority
	Page     int
	Limit    int
}

type TaskStatistics struct {
	Total        int64 `json:"total"`
	Completed    int64 `json:"completed"`
	InProgress   int64 `json:"inProgress"`
	Pending      int64 `json:"pending"`
	HighPriority int64 `json:"highPriority"`
}
