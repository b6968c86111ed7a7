package models

import "time"

// Task is a station chore assigned to staff.
type Task struct {
	ID          int64     `db:"id" json:"id"`
	Description string    `db:"description" json:"description"`
	AssignedTo  string    `db:"assigned_to" json:"assigned_to"`
	Status      string    `db:"status" json:"status"`
	DueDate     time.Time `db:"due_date" json:"due_date"`
}
