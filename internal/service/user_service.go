package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/studyhq/studyplan-backend/internal/model"
	"github.com/studyhq/studyplan-backend/internal/repository"
)

// UserService handles account records.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create persists a new account. The password must already be hashed.
func (s *UserService) Create(ctx context.Context, u *model.User) error {
	return s.userRepo.Create(ctx, u)
}

// GetByEmail retrieves an account by its unique email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// GetByID retrieves an account by ID.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
