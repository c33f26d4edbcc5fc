package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studyhq/studyplan-backend/internal/model"
)

// SubjectWithTasks pairs a subject with its full task list for aggregation.
type SubjectWithTasks struct {
	Subject model.Subject `json:"subject"`
	Tasks   []model.Task  `json:"tasks"`
}

// DashboardRepository loads the full planner state of one user.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// GetSubjectsWithTasks returns every subject the user owns together with its
// tasks. Tasks come back in creation order per subject; the summary builder
// applies its own ordering.
func (r *DashboardRepository) GetSubjectsWithTasks(ctx context.Context, userID uuid.UUID) ([]SubjectWithTasks, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, semester, credits, difficulty, created_at, updated_at
		 FROM subjects WHERE user_id = $1
		 ORDER BY semester ASC NULLS FIRST, name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []SubjectWithTasks
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Semester, &s.Credits, &s.Difficulty, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		index[s.ID] = len(result)
		result = append(result, SubjectWithTasks{Subject: s, Tasks: []model.Task{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return []SubjectWithTasks{}, nil
	}

	taskRows, err := r.pool.Query(ctx,
		`SELECT t.id, t.subject_id, t.title, t.description, t.type, t.status, t.due_date, t.grade, t.created_at, t.updated_at
		 FROM tasks t
		 JOIN subjects s ON s.id = t.subject_id
		 WHERE s.user_id = $1
		 ORDER BY t.created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer taskRows.Close()

	for taskRows.Next() {
		var t model.Task
		if err := taskRows.Scan(&t.ID, &t.SubjectID, &t.Title, &t.Description, &t.Type, &t.Status, &t.DueDate, &t.Grade, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		if i, ok := index[t.SubjectID]; ok {
			result[i].Tasks = append(result[i].Tasks, t)
		}
	}
	return result, taskRows.Err()
}
