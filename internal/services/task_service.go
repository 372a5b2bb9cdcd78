package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/task-management/internal/models"
	"github.com/adanyl0v/task-management/internal/storage"
)

type taskServiceImpl struct {
	logger  zerolog.Logger
	tasks   TaskStorage
	archive ArchiveStorage
	lookups LookupStorage
}

// NewTaskService returns a TaskService backed by the given storages.
// Nil storages mean the store is not configured: every call then
// fails with ErrNotConfigured.
func NewTaskService(
	logger zerolog.Logger,
	tasks TaskStorage,
	archive ArchiveStorage,
	lookups LookupStorage,
) TaskService {
	return &taskServiceImpl{
		logger:  logger,
		tasks:   tasks,
		archive: archive,
		lookups: lookups,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, task *models.Task) (int64, error) {
	logger := s.loggerFrom(ctx)
	if err := s.checkConfigured(logger); err != nil {
		return 0, err
	}

	taskID, err := s.tasks.Create(ctx, task)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to create task")
		return 0, translateError(err)
	}

	logger.Info().
		Int64("task_id", taskID).
		Msg("created task")
	return taskID, nil
}

func (s *taskServiceImpl) GetTasks(ctx context.Context, statusID int32) ([]*models.Task, error) {
	logger := s.loggerFrom(ctx)
	if err := s.checkConfigured(logger); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.List(ctx, statusID)
	if err != nil {
		logger.Error().
			Err(err).
			Int32("status_id", statusID).
			Msg("failed to select tasks")
		return nil, translateError(err)
	}

	if len(tasks) == 0 {
		logger.Info().
			Int32("status_id", statusID).
			Msg("no tasks found")
		return tasks, nil
	}
	logger.Info().
		Int("count", len(tasks)).
		Int32("status_id", statusID).
		Msg("tasks found")
	return tasks, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, task *models.Task) error {
	logger := s.loggerFrom(ctx)
	if err := s.checkConfigured(logger); err != nil {
		return err
	}

	err := s.tasks.Update(ctx, task)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logger.Warn().
				Int64("task_id", task.ID).
				Msg("task not found")
			return ErrTaskNotFound
		}

		logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to update task")
		return translateError(err)
	}

	logger.Info().
		Int64("task_id", task.ID).
		Msg("updated task")
	return nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID int64) error {
	logger := s.loggerFrom(ctx)
	if err := s.checkConfigured(logger); err != nil {
		return err
	}

	err := s.tasks.Delete(ctx, taskID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logger.Warn().
				Int64("task_id", taskID).
				Msg("task not found")
			return ErrTaskNotFound
		}

		logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to delete task")
		return translateError(err)
	}

	logger.Info().
		Int64("task_id", taskID).
		Msg("deleted task")
	return nil
}

func (s *taskServiceImpl) ArchiveCompletedTasks(ctx context.Context) (int64, error) {
	logger := s.loggerFrom(ctx)
	if err := s.checkConfigured(logger); err != nil {
		return 0, err
	}

	count, err := s.archive.ArchiveCompleted(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to archive completed tasks")
		return 0, translateError(err)
	}

	logger.Info().
		Int64("count", count).
		Msg("archived completed tasks")
	return count, nil
}

func (s *taskServiceImpl) GetArchivedTasks(ctx context.Context) ([]*models.ArchivedTask, error) {
	logger := s.loggerFrom(ctx)
	if err := s.checkConfigured(logger); err != nil {
		return nil, err
	}

	archived, err := s.archive.List(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to select archived tasks")
		return nil, translateError(err)
	}

	logger.Info().
		Int("count", len(archived)).
		Msg("archived tasks found")
	return archived, nil
}

func (s *taskServiceImpl) GetStatuses(ctx context.Context) ([]*models.Lookup, error) {
	logger := s.loggerFrom(ctx)
	if err := s.checkConfigured(logger); err != nil {
		return nil, err
	}

	statuses, err := s.lookups.Statuses(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to select statuses")
		return nil, translateError(err)
	}
	return statuses, nil
}

func (s *taskServiceImpl) GetPriorities(ctx context.Context) ([]*models.Lookup, error) {
	logger := s.loggerFrom(ctx)
	if err := s.checkConfigured(logger); err != nil {
		return nil, err
	}

	priorities, err := s.lookups.Priorities(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to select priorities")
		return nil, translateError(err)
	}
	return priorities, nil
}

// loggerFrom prefers the request-scoped logger stored in ctx.
func (s *taskServiceImpl) loggerFrom(ctx context.Context) *zerolog.Logger {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		return &s.logger
	}
	return logger
}

func (s *taskServiceImpl) checkConfigured(logger *zerolog.Logger) error {
	if s.tasks == nil || s.archive == nil || s.lookups == nil {
		logger.Error().Msg("task store connection is not configured")
		return ErrNotConfigured
	}
	return nil
}

func translateError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrTaskNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) ||
			pgerrcode.IsDataException(pgErr.Code) {
			return fmt.Errorf("%w: %s", ErrInvalidTask, pgErr.Message)
		}
	}

	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
