package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/studyhq/studyplan-backend/internal/model"
	"github.com/studyhq/studyplan-backend/internal/repository"
)

// Validation errors for values outside the closed enumerations.
var (
	ErrInvalidTaskType   = errors.New("invalid task type")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// TaskService handles task CRUD scoped to the owning subject.
type TaskService struct {
	taskRepo *repository.TaskRepository
	guard    *OwnershipGuard
	log      zerolog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo *repository.TaskRepository, guard *OwnershipGuard, log zerolog.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		guard:    guard,
		log:      log.With().Str("component", "task_service").Logger(),
	}
}

// ListForSubject returns the subject's tasks ordered by status (PENDING
// first) then due date, with undated tasks last within each status group.
func (s *TaskService) ListForSubject(ctx context.Context, email string, subjectID uuid.UUID) ([]model.Task, error) {
	if _, _, err := s.guard.AuthorizeSubject(ctx, email, subjectID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	SortTasks(tasks)
	return tasks, nil
}

// Create persists a new task under the subject. New tasks start PENDING.
func (s *TaskService) Create(ctx context.Context, email string, subjectID uuid.UUID, req *model.CreateTaskRequest) (*model.Task, error) {
	if _, _, err := s.guard.AuthorizeSubject(ctx, email, subjectID); err != nil {
		return nil, err
	}

	// Request binding already rejects unknown types; re-check here so no
	// other caller can slip an open string into the store.
	if !req.Type.Valid() {
		return nil, ErrInvalidTaskType
	}

	task := &model.Task{
		SubjectID:   subjectID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Status:      model.TaskStatusPending,
		DueDate:     req.DueDate,
		Grade:       req.Grade,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.log.Debug().Str("task_id", task.ID.String()).Str("subject_id", subjectID.String()).Msg("Task created")
	return task, nil
}

// UpdateStatus overwrites the task's status after an ownership check through
// the parent subject. Status is the only mutable field; both transitions
// (PENDING→COMPLETED and back) go through here.
func (s *TaskService) UpdateStatus(ctx context.Context, email string, taskID uuid.UUID, status model.TaskStatus) (*model.Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidTaskStatus
	}

	if _, _, err := s.guard.AuthorizeTask(ctx, email, taskID); err != nil {
		return nil, err
	}

	updated, err := s.taskRepo.UpdateStatus(ctx, taskID, status)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete permanently removes a task after an ownership check.
func (s *TaskService) Delete(ctx context.Context, email string, taskID uuid.UUID) error {
	if _, _, err := s.guard.AuthorizeTask(ctx, email, taskID); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, taskID)
}
