package models

import "time"

// Task statuses. The set is part of the API contract.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Task is a work item owned by exactly one user.
type Task struct {
	ID          int64
	Name        string
	DueDate     time.Time
	Description *string
	Status      string
	UserID      int64
	CreatedAt   time.Time
}
