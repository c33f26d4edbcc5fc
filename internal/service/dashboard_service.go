package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/studyhq/studyplan-backend/internal/model"
	"github.com/studyhq/studyplan-backend/internal/repository"
)

// UpcomingTask is a dashboard row for a not-yet-completed task with a due
// date, annotated with its subject name.
type UpcomingTask struct {
	ID          uuid.UUID      `json:"id"`
	SubjectID   uuid.UUID      `json:"subject_id"`
	SubjectName string         `json:"subject_name"`
	Title       string         `json:"title"`
	Type        model.TaskType `json:"type"`
	DueDate     time.Time      `json:"due_date"`
}

// Summary consolidates the dashboard statistics for one user.
// CompletionPercent is nil when the user has no tasks at all.
type Summary struct {
	TotalSubjects     int            `json:"total_subjects"`
	TotalTasks        int            `json:"total_tasks"`
	CompletedTasks    int            `json:"completed_tasks"`
	PendingTasks      int            `json:"pending_tasks"`
	CompletionPercent *int           `json:"completion_percent"`
	NextTasks         []UpcomingTask `json:"next_tasks"`
}

// maxNextTasks caps the upcoming-tasks list on the dashboard.
const maxNextTasks = 5

// BuildSummary derives dashboard statistics from a user's subjects and their
// tasks. It is a pure read-time transformation: no storage, no side effects.
func BuildSummary(subjects []repository.SubjectWithTasks) Summary {
	summary := Summary{
		TotalSubjects: len(subjects),
		NextTasks:     []UpcomingTask{},
	}

	for _, s := range subjects {
		summary.TotalTasks += len(s.Tasks)
		for _, t := range s.Tasks {
			if t.Status == model.TaskStatusCompleted {
				summary.CompletedTasks++
				continue
			}
			if t.DueDate != nil {
				summary.NextTasks = append(summary.NextTasks, UpcomingTask{
					ID:          t.ID,
					SubjectID:   s.Subject.ID,
					SubjectName: s.Subject.Name,
					Title:       t.Title,
					Type:        t.Type,
					DueDate:     *t.DueDate,
				})
			}
		}
	}
	summary.PendingTasks = summary.TotalTasks - summary.CompletedTasks

	if summary.TotalTasks > 0 {
		pct := int(math.Round(float64(summary.CompletedTasks) / float64(summary.TotalTasks) * 100))
		summary.CompletionPercent = &pct
	}

	// Stable: due-date ties keep their input order, no tertiary key.
	sort.SliceStable(summary.NextTasks, func(i, j int) bool {
		return summary.NextTasks[i].DueDate.Before(summary.NextTasks[j].DueDate)
	})
	if len(summary.NextTasks) > maxNextTasks {
		summary.NextTasks = summary.NextTasks[:maxNextTasks]
	}

	return summary
}

// DashboardService assembles the dashboard view for the authenticated user.
type DashboardService struct {
	repo  *repository.DashboardRepository
	guard *OwnershipGuard
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(repo *repository.DashboardRepository, guard *OwnershipGuard) *DashboardService {
	return &DashboardService{repo: repo, guard: guard}
}

// GetSummary loads the user's full planner state and reduces it to the
// dashboard summary.
func (s *DashboardService) GetSummary(ctx context.Context, email string) (*Summary, error) {
	user, err := s.guard.ResolveUser(ctx, email)
	if err != nil {
		return nil, err
	}

	subjects, err := s.repo.GetSubjectsWithTasks(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	summary := BuildSummary(subjects)
	return &summary, nil
}
