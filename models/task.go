package models

import "time"

// TaskPriority is the priority level of a tracked task
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "High"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityLow    TaskPriority = "Low"
)

// ParseTaskPriority normalizes a raw priority string, defaulting to Medium
// for anything outside the three known levels.
func ParseTaskPriority(s string) TaskPriority {
	switch TaskPriority(s) {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return TaskPriority(s)
	default:
		return TaskPriorityMedium
	}
}

// TaskDraft holds the fields extracted from free text before persisting a
// task. Unfilled fields default to Medium priority and empty strings.
type TaskDraft struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    TaskPriority `json:"priority"`
	AssignedTo  string       `json:"assigned_to"`
	DueDate     string       `json:"due_date"`
}

// TrackedTask represents a task record held by the task-tracking service
type TrackedTask struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    TaskPriority `json:"priority"`
	AssignedTo  string       `json:"assigned_to"`
	DueDate     string       `json:"due_date"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}
