package services

import (
	"context"
	"errors"

	"github.com/adanyl0v/task-management/internal/models"
)

var (
	// ErrNotConfigured means no task store connection is configured.
	ErrNotConfigured = errors.New("task store connection is not configured")

	// ErrTaskNotFound means no task has the requested id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTask means the store rejected the written values,
	// e.g. an unknown status or priority id.
	ErrInvalidTask = errors.New("task rejected by store")

	// ErrPersistence wraps any other store failure.
	ErrPersistence = errors.New("task store failure")
)

type TaskService interface {
	// CreateTask inserts the task in its own transaction and
	// returns the generated id.
	CreateTask(ctx context.Context, task *models.Task) (int64, error)

	// GetTasks returns all tasks, filtered by status when statusID
	// is positive. It never returns ErrTaskNotFound.
	GetTasks(ctx context.Context, statusID int32) ([]*models.Task, error)

	// UpdateTask overwrites the task with task.ID.
	//
	// It returns ErrTaskNotFound if the task doesn't exist,
	// leaving the store unchanged.
	UpdateTask(ctx context.Context, task *models.Task) error

	// DeleteTask removes the task with the given id.
	//
	// It returns ErrTaskNotFound if the task doesn't exist.
	DeleteTask(ctx context.Context, taskID int64) error

	// ArchiveCompletedTasks moves every completed task to the archive
	// and returns how many were moved.
	ArchiveCompletedTasks(ctx context.Context) (int64, error)

	// GetArchivedTasks returns archived tasks, latest completion first.
	GetArchivedTasks(ctx context.Context) ([]*models.ArchivedTask, error)

	GetStatuses(ctx context.Context) ([]*models.Lookup, error)
	GetPriorities(ctx context.Context) ([]*models.Lookup, error)
}

type TaskStorage interface {
	Create(ctx context.Context, task *models.Task) (int64, error)
	List(ctx context.Context, statusID int32) ([]*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, taskID int64) error
}

type ArchiveStorage interface {
	ArchiveCompleted(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]*models.ArchivedTask, error)
}

type LookupStorage interface {
	Statuses(ctx context.Context) ([]*models.Lookup, error)
	Priorities(ctx context.Context) ([]*models.Lookup, error)
}
