package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
	model "taskflow.com/taskflow/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	task.ID = uuid.NewString()
	task.CreatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

// FindByID loads a task together with its owning user.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Preload("User").First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, filter dto.ListTasksFilter) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	offset := (filter.Page - 1) * filter.Limit

	var tasks []model.Task
	err := query.Order("created_at desc").
		Offset(offset).Limit(filter.Limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) CountStatistics(ctx context.Context) (*dto.TaskStatistics, error) {
	stats := &dto.TaskStatistics{}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.Total, r.db.WithContext(ctx).Model(&model.Task{})},
		{&stats.Completed, r.db.WithContext(ctx).Model(&model.Task{}).Where("status = ?", constants.StatusCompleted)},
		{&stats.InProgress, r.db.WithContext(ctx).Model(&model.Task{}).Where("status = ?", constants.StatusInProgress)},
		{&stats.Pending, r.db.WithContext(ctx).Model(&model.Task{}).Where("status = ?", constants.StatusPending)},
		{&stats.HighPriority, r.db.WithContext(ctx).Model(&model.Task{}).Where("priority = ?", constants.PriorityHigh)},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) (*model.Task, error) {
	if err := r.db.WithContext(ctx).Omit("User").Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Delete(task).Error
}

// FindByStatus queries by status with raw SQL instead of the query
// builder, keeping the store's raw access path for consumers that
// need every matching row unpaginated.
func (r *TaskRepository) FindByStatus(ctx context.Context, status constants.TaskStatus) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM tasks WHERE status = ?", status).
		Scan(&tasks).Error
	return tasks, err
}

// UpdateStatus overwrites the status column without loading the full
// row. No membership check on the value; the column takes whatever
// the queue delivered.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id string, status constants.TaskStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
