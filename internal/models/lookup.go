package models

// Lookup is a row of the task_statuses or task_priorities tables.
type Lookup struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}
