package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adanyl0v/task-management/internal/models"
)

const selectTasksQuery = `
SELECT task_id,
       task_name,
       task_description,
       dateadded,
       deadlinedate,
       iscompleted,
       statusid,
       priorityid
FROM current_tasks
`

// TaskStorage gives access to the current_tasks table.
type TaskStorage struct {
	db DB
}

func NewTaskStorage(db DB) *TaskStorage {
	return &TaskStorage{db: db}
}

// Create inserts the task and returns the generated task_id.
// It returns ErrNoTaskID if the insert yields no identifier.
func (s *TaskStorage) Create(ctx context.Context, task *models.Task) (int64, error) {
	const insertTaskQuery = `
INSERT INTO current_tasks (task_name,
                           task_description,
                           dateadded,
                           deadlinedate,
                           iscompleted,
                           statusid,
                           priorityid)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING task_id
`
	var taskID int64
	err := inTx(ctx, s.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(
			ctx,
			insertTaskQuery,
			task.Name,
			task.Description,
			task.DateAdded,
			task.Deadline,
			task.IsCompleted,
			task.StatusID,
			task.PriorityID,
		).Scan(&taskID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNoTaskID
			}
			return fmt.Errorf("failed to insert task: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return taskID, nil
}

// List returns all tasks, restricted to statusID when it is positive.
func (s *TaskStorage) List(ctx context.Context, statusID int32) ([]*models.Task, error) {
	query := selectTasksQuery
	var args []any
	if statusID > 0 {
		query += "WHERE statusid = $1\n"
		args = append(args, statusID)
	}
	query += "ORDER BY task_id"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}
	return tasks, nil
}

// Update overwrites every mutable column of the task with task.ID.
// It returns ErrNotFound if no such task exists.
func (s *TaskStorage) Update(ctx context.Context, task *models.Task) error {
	const updateTaskQuery = `
UPDATE current_tasks
SET task_name = $1,
    task_description = $2,
    dateadded = $3,
    deadlinedate = $4,
    iscompleted = $5,
    statusid = $6,
    priorityid = $7
WHERE task_id = $8
`
	return inTx(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			updateTaskQuery,
			task.Name,
			task.Description,
			task.DateAdded,
			task.Deadline,
			task.IsCompleted,
			task.StatusID,
			task.PriorityID,
			task.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Delete removes the task with the given id.
// It returns ErrNotFound if no such task exists.
func (s *TaskStorage) Delete(ctx context.Context, taskID int64) error {
	const deleteTaskQuery = `
DELETE FROM current_tasks
WHERE task_id = $1
`
	return inTx(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, deleteTaskQuery, taskID)
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// scanTask maps a row selected by selectTasksQuery.
func scanTask(row pgx.Row) (*models.Task, error) {
	task := new(models.Task)
	err := row.Scan(
		&task.ID,
		&task.Name,
		&task.Description,
		&task.DateAdded,
		&task.Deadline,
		&task.IsCompleted,
		&task.StatusID,
		&task.PriorityID,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}
