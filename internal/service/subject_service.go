package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/studyhq/studyplan-backend/internal/model"
	"github.com/studyhq/studyplan-backend/internal/repository"
)

// SubjectService handles subject CRUD scoped to the authenticated user.
type SubjectService struct {
	subjectRepo *repository.SubjectRepository
	guard       *OwnershipGuard
	log         zerolog.Logger
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(subjectRepo *repository.SubjectRepository, guard *OwnershipGuard, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		guard:       guard,
		log:         log.With().Str("component", "subject_service").Logger(),
	}
}

// List returns all subjects owned by the user behind the given email,
// ordered by semester (unset first) then name.
func (s *SubjectService) List(ctx context.Context, email string) ([]model.Subject, error) {
	user, err := s.guard.ResolveUser(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.subjectRepo.ListByUser(ctx, user.ID)
}

// Create persists a new subject owned by the user behind the given email.
func (s *SubjectService) Create(ctx context.Context, email string, req *model.CreateSubjectRequest) (*model.Subject, error) {
	user, err := s.guard.ResolveUser(ctx, email)
	if err != nil {
		return nil, err
	}

	subject := &model.Subject{
		UserID:     user.ID,
		Name:       req.Name,
		Semester:   req.Semester,
		Credits:    req.Credits,
		Difficulty: req.Difficulty,
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}

	s.log.Debug().Str("subject_id", subject.ID.String()).Str("user_id", user.ID.String()).Msg("Subject created")
	return subject, nil
}

// Delete removes a subject after an ownership check. The store cascades the
// delete to the subject's tasks.
func (s *SubjectService) Delete(ctx context.Context, email string, subjectID uuid.UUID) error {
	if _, _, err := s.guard.AuthorizeSubject(ctx, email, subjectID); err != nil {
		return err
	}
	return s.subjectRepo.Delete(ctx, subjectID)
}
