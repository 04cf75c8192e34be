package tasks

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// UpdateParams is a partial update: nil fields keep their stored values.
type UpdateParams struct {
	Name        *string
	DueDate     *time.Time
	Description *string
	Status      *string
}

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Task, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*models.Task, error)
	Delete(ctx context.Context, id int64) (*models.Task, error)
}
