package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/adanyl0v/task-management/internal/models"
)

// ArchiveStorage gives access to the taskarchive table and the
// archive_completed_tasks procedure.
type ArchiveStorage struct {
	db DB
}

func NewArchiveStorage(db DB) *ArchiveStorage {
	return &ArchiveStorage{db: db}
}

// ArchiveCompleted moves all completed tasks into the archive and returns
// how many were moved. The move is a single server-side statement.
func (s *ArchiveStorage) ArchiveCompleted(ctx context.Context) (int64, error) {
	const archiveQuery = `SELECT archive_completed_tasks()`

	var count pgtype.Int8
	err := s.db.QueryRow(ctx, archiveQuery).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to archive completed tasks: %w", err)
	}
	if !count.Valid {
		return 0, nil
	}
	return count.Int64, nil
}

// List returns archived tasks, latest completion date first and, within
// the same date, most recently archived first.
func (s *ArchiveStorage) List(ctx context.Context) ([]*models.ArchivedTask, error) {
	const selectArchivedTasksQuery = `
SELECT idarchivedtask,
       task_id,
       task_name,
       completiondate
FROM taskarchive
ORDER BY completiondate DESC, idarchivedtask DESC
`
	rows, err := s.db.Query(ctx, selectArchivedTasksQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to select archived tasks: %w", err)
	}
	defer rows.Close()

	archived := make([]*models.ArchivedTask, 0)
	for rows.Next() {
		task := new(models.ArchivedTask)
		err = rows.Scan(
			&task.ID,
			&task.TaskID,
			&task.TaskName,
			&task.CompletionDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archived task: %w", err)
		}
		archived = append(archived, task)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}
	return archived, nil
}
