package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"

	"github.com/adanyl0v/task-management/internal/models"
)

var taskColumns = []string{
	"task_id",
	"task_name",
	"task_description",
	"dateadded",
	"deadlinedate",
	"iscompleted",
	"statusid",
	"priorityid",
}

func ptr[T any](v T) *T {
	return &v
}

func sampleTask() *models.Task {
	return &models.Task{
		Name:        ptr("Write report"),
		Description: ptr("Quarterly numbers"),
		DateAdded:   models.NewDate(2024, time.January, 1),
		Deadline:    models.NewDate(2024, time.January, 10),
		StatusID:    1,
		PriorityID:  2,
	}
}

func TestTaskStorage_Create(t *testing.T) {
	mock := newMockPool(t)
	task := sampleTask()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO current_tasks")).
		WithArgs(task.Name, task.Description, pgxmock.AnyArg(), pgxmock.AnyArg(), false, int32(1), int32(2)).
		WillReturnRows(pgxmock.NewRows([]string{"task_id"}).AddRow(int64(42)))
	mock.ExpectCommit()

	id, err := NewTaskStorage(mock).Create(context.Background(), task)
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	if id != 42 {
		t.Errorf("Expected id 42, got %d", id)
	}
}

func TestTaskStorage_Create_NoID(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO current_tasks")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"task_id"}))
	mock.ExpectRollback()

	_, err := NewTaskStorage(mock).Create(context.Background(), sampleTask())
	if !errors.Is(err, ErrNoTaskID) {
		t.Fatalf("Expected ErrNoTaskID, got %v", err)
	}
}

func TestTaskStorage_Create_DriverError(t *testing.T) {
	mock := newMockPool(t)
	driverErr := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO current_tasks")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(driverErr)
	mock.ExpectRollback()

	_, err := NewTaskStorage(mock).Create(context.Background(), sampleTask())
	if !errors.Is(err, driverErr) {
		t.Fatalf("Expected %v, got %v", driverErr, err)
	}
}

func TestTaskStorage_List(t *testing.T) {
	mock := newMockPool(t)
	added := models.NewDate(2024, time.February, 1)
	deadline := models.NewDate(2024, time.February, 5)

	mock.ExpectQuery(regexp.QuoteMeta("FROM current_tasks")).
		WillReturnRows(pgxmock.NewRows(taskColumns).
			AddRow(int64(1), ptr("a"), (*string)(nil), added, deadline, false, int32(1), int32(1)).
			AddRow(int64(2), ptr("b"), ptr("desc"), added, deadline, true, int32(2), int32(3)))

	tasks, err := NewTaskStorage(mock).List(context.Background(), 0)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Description != nil {
		t.Errorf("Expected nil description, got %q", *tasks[0].Description)
	}
	if got := tasks[1]; got.ID != 2 || !got.IsCompleted || got.PriorityID != 3 {
		t.Errorf("Unexpected task: %+v", got)
	}
	if tasks[1].Deadline != deadline {
		t.Errorf("Expected deadline %v, got %v", deadline, tasks[1].Deadline)
	}
}

func TestTaskStorage_List_Empty(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM current_tasks")).
		WillReturnRows(pgxmock.NewRows(taskColumns))

	tasks, err := NewTaskStorage(mock).List(context.Background(), 0)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", tasks)
	}
}

func TestTaskStorage_List_StatusFilter(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE statusid = $1")).
		WithArgs(int32(2)).
		WillReturnRows(pgxmock.NewRows(taskColumns))

	_, err := NewTaskStorage(mock).List(context.Background(), 2)
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
}

func TestTaskStorage_List_NonPositiveFilterIsIgnored(t *testing.T) {
	for _, statusID := range []int32{0, -1} {
		t.Run(fmt.Sprint(statusID), func(t *testing.T) {
			var queries []string
			matcher := pgxmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
				queries = append(queries, actualSQL)
				return pgxmock.QueryMatcherRegexp.Match(expectedSQL, actualSQL)
			})
			mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(matcher))
			if err != nil {
				t.Fatalf("Failed to create mock pool: %v", err)
			}
			defer mock.Close()

			mock.ExpectQuery("FROM current_tasks").
				WillReturnRows(pgxmock.NewRows(taskColumns))

			_, err = NewTaskStorage(mock).List(context.Background(), statusID)
			if err != nil {
				t.Fatalf("Failed to list tasks: %v", err)
			}
			if len(queries) != 1 {
				t.Fatalf("Expected 1 query, got %d", len(queries))
			}
			if strings.Contains(queries[0], "WHERE") {
				t.Errorf("Expected no filter, got query %q", queries[0])
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("Unmet expectations: %v", err)
			}
		})
	}
}

func TestTaskStorage_List_QueryError(t *testing.T) {
	mock := newMockPool(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM current_tasks")).
		WillReturnError(errors.New("relation does not exist"))

	_, err := NewTaskStorage(mock).List(context.Background(), 0)
	if err == nil {
		t.Fatal("Expected error")
	}
}

func TestTaskStorage_Update(t *testing.T) {
	mock := newMockPool(t)
	task := sampleTask()
	task.ID = 7
	task.IsCompleted = true

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE current_tasks")).
		WithArgs(task.Name, task.Description, pgxmock.AnyArg(), pgxmock.AnyArg(), true, int32(1), int32(2), int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	if err := NewTaskStorage(mock).Update(context.Background(), task); err != nil {
		t.Fatalf("Failed to update task: %v", err)
	}
}

func TestTaskStorage_Update_NotFound(t *testing.T) {
	mock := newMockPool(t)
	task := sampleTask()
	task.ID = 404

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE current_tasks")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), int64(404)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := NewTaskStorage(mock).Update(context.Background(), task)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestTaskStorage_Delete(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM current_tasks")).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	if err := NewTaskStorage(mock).Delete(context.Background(), 3); err != nil {
		t.Fatalf("Failed to delete task: %v", err)
	}
}

func TestTaskStorage_Delete_NotFound(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM current_tasks")).
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	err := NewTaskStorage(mock).Delete(context.Background(), 3)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestTaskStorage_Delete_DriverError(t *testing.T) {
	mock := newMockPool(t)
	driverErr := errors.New("connection lost")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM current_tasks")).
		WithArgs(int64(3)).
		WillReturnError(driverErr)
	mock.ExpectRollback()

	err := NewTaskStorage(mock).Delete(context.Background(), 3)
	if !errors.Is(err, driverErr) {
		t.Fatalf("Expected %v, got %v", driverErr, err)
	}
}
