package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studyhq/studyplan-backend/internal/model"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *model.Task) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO tasks (subject_id, title, description, type, status, due_date, grade)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		t.SubjectID, t.Title, t.Description, t.Type, t.Status, t.DueDate, t.Grade,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// ListBySubject returns the subject's tasks in creation order. Display
// ordering (status, then due date) is applied by the service layer.
func (r *TaskRepository) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, subject_id, title, description, type, status, due_date, grade, created_at, updated_at
		 FROM tasks WHERE subject_id = $1
		 ORDER BY created_at ASC`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.SubjectID, &t.Title, &t.Description, &t.Type, &t.Status, &t.DueDate, &t.Grade, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetWithOwner retrieves a task joined with its parent subject's owner, so
// ownership can be checked without a second round trip.
func (r *TaskRepository) GetWithOwner(ctx context.Context, id uuid.UUID) (*model.Task, uuid.UUID, error) {
	t := &model.Task{}
	var ownerID uuid.UUID
	err := r.pool.QueryRow(ctx,
		`SELECT t.id, t.subject_id, t.title, t.description, t.type, t.status, t.due_date, t.grade, t.created_at, t.updated_at, s.user_id
		 FROM tasks t
		 JOIN subjects s ON s.id = t.subject_id
		 WHERE t.id = $1`, id,
	).Scan(&t.ID, &t.SubjectID, &t.Title, &t.Description, &t.Type, &t.Status, &t.DueDate, &t.Grade, &t.CreatedAt, &t.UpdatedAt, &ownerID)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return t, ownerID, nil
}

// UpdateStatus overwrites the task's status and returns the updated row.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TaskStatus) (*model.Task, error) {
	t := &model.Task{}
	err := r.pool.QueryRow(ctx,
		`UPDATE tasks SET status = $1, updated_at = NOW() WHERE id = $2
		 RETURNING id, subject_id, title, description, type, status, due_date, grade, created_at, updated_at`,
		status, id,
	).Scan(&t.ID, &t.SubjectID, &t.Title, &t.Description, &t.Type, &t.Status, &t.DueDate, &t.Grade, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}
