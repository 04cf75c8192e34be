package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
)

// TaskService is a pass-through from the API to the task store. No caching,
// no retries: store failures propagate immediately.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService bound to the given repositories.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// CreateTask persists a new task for ownerID. A non-existent owner yields
// common.ErrOwnerNotFound and persists nothing.
func (s *TaskService) CreateTask(ctx context.Context, name string, dueDate time.Time, description *string, ownerID int64) (*models.Task, error) {
	task := &models.Task{Name: name, DueDate: dueDate, Description: description, UserID: ownerID}
	repo := s.repomanager.Tasks(s.db)
	t, err := repo.Create(ctx, task)
	if err != nil {
		if errors.Is(err, common.ErrOwnerNotFound) {
			return nil, common.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return t, nil
}

// ListTasks returns every task owned by ownerID. An empty list is success.
func (s *TaskService) ListTasks(ctx context.Context, ownerID int64) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	list, err := repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return list, nil
}

// UpdateTask applies a partial update. A missing id yields
// common.ErrTaskNotFound and leaves the store unchanged.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, params tasks.UpdateParams) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	t, err := repo.Update(ctx, id, params)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrTaskNotFound
		}
		return nil, fmt.Errorf("error updating task: %w", err)
	}
	return t, nil
}

// DeleteTask removes a task and returns the deleted record. A missing id
// yields common.ErrTaskNotFound.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	t, err := repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrTaskNotFound
		}
		return nil, fmt.Errorf("error deleting task: %w", err)
	}
	return t, nil
}
