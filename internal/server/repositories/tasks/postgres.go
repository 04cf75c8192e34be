package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// foreignKeyViolation is the Postgres error code for a broken FK reference.
const foreignKeyViolation = "23503"

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	query :=
		`INSERT INTO tasks (name, due_date, description, user_id)
         VALUES ($1, $2, $3, $4)
		 RETURNING id, status, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.Name, task.DueDate, task.Description, task.UserID).Scan(&task.ID, &task.Status, &task.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, common.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Task, error) {
	query :=
		`SELECT id, name, due_date, description, status, user_id, created_at FROM tasks
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(&task.ID, &task.Name, &task.DueDate, &task.Description,
			&task.Status, &task.UserID, &task.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, params UpdateParams) (*models.Task, error) {
	query :=
		`UPDATE tasks SET
		     name = COALESCE($2, name),
		     due_date = COALESCE($3, due_date),
		     description = COALESCE($4, description),
		     status = COALESCE($5, status)
		 WHERE id = $1
		 RETURNING id, name, due_date, description, status, user_id, created_at
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id,
		params.Name, params.DueDate, params.Description, params.Status).
		Scan(&task.ID, &task.Name, &task.DueDate, &task.Description,
			&task.Status, &task.UserID, &task.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (*models.Task, error) {
	query :=
		`DELETE FROM tasks
		 WHERE id = $1
		 RETURNING id, name, due_date, description, status, user_id, created_at
		 `

	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&task.ID, &task.Name, &task.DueDate, &task.Description,
			&task.Status, &task.UserID, &task.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}
