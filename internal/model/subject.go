package model

import (
	"time"

	"github.com/google/uuid"
)

// Subject represents a course owned by a user, grouping tasks.
type Subject struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	Semester   *string   `json:"semester"`
	Credits    *float64  `json:"credits"`
	Difficulty *float64  `json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateSubjectRequest is the payload for creating a subject.
// Difficulty is shown as 1-5 in clients but is not range-checked here.
type CreateSubjectRequest struct {
	Name       string   `json:"name" binding:"required,max=100"`
	Semester   *string  `json:"semester" binding:"omitempty,max=50"`
	Credits    *float64 `json:"credits"`
	Difficulty *float64 `json:"difficulty"`
}
