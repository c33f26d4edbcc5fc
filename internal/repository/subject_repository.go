package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studyhq/studyplan-backend/internal/model"
)

type SubjectRepository struct {
	pool *pgxpool.Pool
}

func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

func (r *SubjectRepository) Create(ctx context.Context, s *model.Subject) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO subjects (user_id, name, semester, credits, difficulty)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		s.UserID, s.Name, s.Semester, s.Credits, s.Difficulty,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// ListByUser returns the user's subjects ordered by semester then name.
// An unset semester sorts before any value.
func (r *SubjectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Subject, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, semester, credits, difficulty, created_at, updated_at
		 FROM subjects WHERE user_id = $1
		 ORDER BY semester ASC NULLS FIRST, name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []model.Subject
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Semester, &s.Credits, &s.Difficulty, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// GetByID retrieves a single subject by ID regardless of owner.
func (r *SubjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Subject, error) {
	s := &model.Subject{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, semester, credits, difficulty, created_at, updated_at
		 FROM subjects WHERE id = $1`, id,
	).Scan(&s.ID, &s.UserID, &s.Name, &s.Semester, &s.Credits, &s.Difficulty, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Delete removes a subject. Its tasks go with it via ON DELETE CASCADE.
func (r *SubjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	return err
}
