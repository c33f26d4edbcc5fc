package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/studyhq/studyplan-backend/internal/model"
	"github.com/studyhq/studyplan-backend/internal/repository"
)

// Guard errors surfaced to handlers.
var (
	// ErrUserNotFound means the session identity has no matching account.
	ErrUserNotFound = errors.New("no account matches the authenticated identity")
	// ErrNotFound covers both a missing resource and a resource owned by a
	// different account. The two cases are deliberately indistinguishable so
	// existence never leaks across accounts.
	ErrNotFound = errors.New("resource not found")
)

// OwnershipGuard binds resources to their owning user. A task's effective
// owner is its parent subject's owner.
type OwnershipGuard struct {
	userRepo    *repository.UserRepository
	subjectRepo *repository.SubjectRepository
	taskRepo    *repository.TaskRepository
}

// NewOwnershipGuard creates a new OwnershipGuard.
func NewOwnershipGuard(
	userRepo *repository.UserRepository,
	subjectRepo *repository.SubjectRepository,
	taskRepo *repository.TaskRepository,
) *OwnershipGuard {
	return &OwnershipGuard{
		userRepo:    userRepo,
		subjectRepo: subjectRepo,
		taskRepo:    taskRepo,
	}
}

// ResolveUser maps a verified session email to the account record.
func (g *OwnershipGuard) ResolveUser(ctx context.Context, email string) (*model.User, error) {
	user, err := g.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// AuthorizeSubject resolves the user and confirms the subject belongs to them.
func (g *OwnershipGuard) AuthorizeSubject(ctx context.Context, email string, subjectID uuid.UUID) (*model.User, *model.Subject, error) {
	user, err := g.ResolveUser(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	subject, err := g.subjectRepo.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if subject.UserID != user.ID {
		return nil, nil, ErrNotFound
	}
	return user, subject, nil
}

// AuthorizeTask resolves the user and confirms the task's parent subject
// belongs to them.
func (g *OwnershipGuard) AuthorizeTask(ctx context.Context, email string, taskID uuid.UUID) (*model.User, *model.Task, error) {
	user, err := g.ResolveUser(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	task, ownerID, err := g.taskRepo.GetWithOwner(ctx, taskID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if ownerID != user.ID {
		return nil, nil, ErrNotFound
	}
	return user, task, nil
}
