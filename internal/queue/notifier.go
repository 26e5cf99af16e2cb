package queue

import (
	"context"
	"errors"

	"taskflow.com/taskflow/internal/constants"
)

// StatusUpdate is the payload of a status-change notification job.
type StatusUpdate struct {
	Job    string               `json:"job"`
	TaskID string               `json:"task_id"`
	Status constants.TaskStatus `json:"status"`
}

func NewStatusUpdate(taskID string, status constants.TaskStatus) StatusUpdate {
	return StatusUpdate{
		Job:    constants.JobStatusUpdate,
		TaskID: taskID,
		Status: status,
	}
}

// Notifier is the producer side of the notification queue. Delivery
// is at-least-once; callers decide whether a publish failure is
// fatal.
type Notifier interface {
	Publish(ctx context.Context, update StatusUpdate) error
}

// Consumer is the worker side of the notification queue.
type Consumer interface {
	// Pop removes and returns the oldest queued update, or
	// ErrQueueEmpty when there is nothing to consume.
	Pop(ctx context.Context) (*StatusUpdate, error)
}

var ErrQueueEmpty = errors.New("notification queue is empty")
