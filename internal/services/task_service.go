package services

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
	"taskflow.com/taskflow/internal/queue"
	repository "taskflow.com/taskflow/internal/repositories"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// TaskService orchestrates the task lifecycle against the store and
// decides when a status-update notification is published. Publishing
// is fire-and-forget: a queue failure never fails the store write it
// follows, it only gets logged.
type TaskService struct {
	repo     *repository.TaskRepository
	users    *repository.UserRepository
	notifier queue.Notifier
}

func NewTaskService(
	repo *repository.TaskRepository,
	users *repository.UserRepository,
	notifier queue.Notifier,
) *TaskService {
	return &TaskService{
		repo:     repo,
		users:    users,
		notifier: notifier,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*model.Task, error) {
	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      constants.StatusPending,
		Priority:    constants.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
	}

	if task.Priority == "" {
		task.Priority = constants.PriorityMedium
	}

	if req.UserID != "" {
		if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, err
		}
		userID := req.UserID
		task.UserID = &userID
	}

	task, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.publishStatusUpdate(ctx, task.ID, task.Status)

	return task, nil
}

// ListTasks applies the optional status/priority filters and
// paginates with 1-based pages. Missing or unusable page/limit values
// arrive here as zero and fall back to the defaults.
func (s *TaskService) ListTasks(ctx context.Context, filter dto.ListTasksFilter) ([]model.Task, error) {
	if filter.Page <= 0 {
		filter.Page = DefaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}

	return s.repo.List(ctx, filter)
}

func (s *TaskService) Statistics(ctx context.Context) (*dto.TaskStatistics, error) {
	return s.repo.CountStatistics(ctx)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// UpdateTask merges the patch into the stored task and saves it. Only
// provided fields are touched: a zero-value field in the patch means
// "leave unchanged", so there is no way to clear a field to empty
// through this path. A status-update notification is published only
// when the status value actually changed.
func (s *TaskService) UpdateTask(ctx context.Context, id string, patch *dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	previousStatus := task.Status

	if patch.Title != "" {
		task.Title = patch.Title
	}
	if patch.Description != "" {
		task.Description = patch.Description
	}
	if patch.Status != "" {
		task.Status = constants.TaskStatus(patch.Status)
	}
	if patch.Priority != "" {
		task.Priority = constants.TaskPriority(patch.Priority)
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}

	task, err = s.repo.Save(ctx, task)
	if err != nil {
		return nil, err
	}

	if task.Status != previousStatus {
		s.publishStatusUpdate(ctx, task.ID, task.Status)
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, task)
}

func (s *TaskService) ListByStatus(ctx context.Context, status constants.TaskStatus) ([]model.Task, error) {
	return s.repo.FindByStatus(ctx, status)
}

// UpdateStatus is the queue-consumer write-back: it overwrites the
// stored status with whatever value the job carried. The value is not
// checked against the status enum, so an unrecognized string gets
// persisted as-is.
func (s *TaskService) UpdateStatus(ctx context.Context, id string, status constants.TaskStatus) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return err
	}
	return nil
}

func (s *TaskService) publishStatusUpdate(ctx context.Context, taskID string, status constants.TaskStatus) {
	update := queue.NewStatusUpdate(taskID, status)
	if err := s.notifier.Publish(ctx, update); err != nil {
		// Best effort: the store write already succeeded, so the
		// queue's view of this task may go stale until the next
		// status change.
		log.Printf("failed to publish status update for task %s: %v", taskID, err)
	}
}
