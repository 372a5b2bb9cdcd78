package storage

import (
	"context"
	"fmt"

	"github.com/adanyl0v/task-management/internal/models"
)

// LookupStorage reads the status and priority enumerations.
type LookupStorage struct {
	db DB
}

func NewLookupStorage(db DB) *LookupStorage {
	return &LookupStorage{db: db}
}

func (s *LookupStorage) Statuses(ctx context.Context) ([]*models.Lookup, error) {
	const selectStatusesQuery = `
SELECT statusid, status_name
FROM task_statuses
ORDER BY statusid
`
	return s.list(ctx, selectStatusesQuery)
}

func (s *LookupStorage) Priorities(ctx context.Context) ([]*models.Lookup, error) {
	const selectPrioritiesQuery = `
SELECT priorityid, priority_name
FROM task_priorities
ORDER BY priorityid
`
	return s.list(ctx, selectPrioritiesQuery)
}

func (s *LookupStorage) list(ctx context.Context, query string) ([]*models.Lookup, error) {
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select lookups: %w", err)
	}
	defer rows.Close()

	lookups := make([]*models.Lookup, 0)
	for rows.Next() {
		lookup := new(models.Lookup)
		err = rows.Scan(&lookup.ID, &lookup.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}
		lookups = append(lookups, lookup)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}
	return lookups, nil
}
