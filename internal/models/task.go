package models

import "github.com/jackc/pgx/v5/pgtype"

type Task struct {
	ID          int64       `json:"task_id"`
	Name        *string     `json:"task_name"`
	Description *string     `json:"task_description"`
	DateAdded   pgtype.Date `json:"dateadded"`
	Deadline    pgtype.Date `json:"deadlinedate"`
	IsCompleted bool        `json:"iscompleted"`
	StatusID    int32       `json:"statusid"`
	PriorityID  int32       `json:"priorityid"`
}

// ArchivedTask is a historical record of a completed task. TaskID points
// at a row that no longer exists in current_tasks.
type ArchivedTask struct {
	ID             int64       `json:"idarchivedtask"`
	TaskID         int64       `json:"task_id"`
	TaskName       string      `json:"task_name"`
	CompletionDate pgtype.Date `json:"completiondate"`
}
