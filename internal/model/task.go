package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskType classifies a task. The set is closed; anything else is rejected
// before persistence.
type TaskType string

const (
	TaskTypeExam       TaskType = "EXAM"
	TaskTypeAssignment TaskType = "ASSIGNMENT"
	TaskTypeProject    TaskType = "PROJECT"
	TaskTypeStudy      TaskType = "STUDY"
)

// Valid reports whether t is a member of the closed type enumeration.
func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeExam, TaskTypeAssignment, TaskTypeProject, TaskTypeStudy:
		return true
	}
	return false
}

// TaskStatus is the two-state task lifecycle. PENDING is the initial state;
// COMPLETED is reversible back to PENDING through the same update operation.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusCompleted TaskStatus = "COMPLETED"
)

// Valid reports whether s is a member of the closed status enumeration.
func (s TaskStatus) Valid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// Task represents a unit of work belonging to a subject.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	SubjectID   uuid.UUID  `json:"subject_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Type        TaskType   `json:"type"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	Grade       *float64   `json:"grade"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateTaskRequest is the payload for creating a task. New tasks always
// start PENDING.
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Type        TaskType   `json:"type" binding:"required,oneof=EXAM ASSIGNMENT PROJECT STUDY"`
	DueDate     *time.Time `json:"due_date"`
	Grade       *float64   `json:"grade"`
}

// UpdateTaskStatusRequest is the payload for the status update operation.
// Status is the only field mutable after creation.
type UpdateTaskStatusRequest struct {
	Status TaskStatus `json:"status" binding:"required,oneof=PENDING COMPLETED"`
}
