package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/studyhq/studyplan-backend/internal/model"
	"github.com/studyhq/studyplan-backend/internal/repository"
)

func TestBuildSummaryEmpty(t *testing.T) {
	summary := BuildSummary(nil)

	if summary.TotalSubjects != 0 || summary.TotalTasks != 0 {
		t.Fatalf("expected zero counts, got %+v", summary)
	}
	if summary.CompletionPercent != nil {
		t.Fatalf("completion percent must be nil with no tasks, got %d", *summary.CompletionPercent)
	}
	if len(summary.NextTasks) != 0 {
		t.Fatalf("expected no next tasks, got %d", len(summary.NextTasks))
	}
}

func TestBuildSummarySingleSubject(t *testing.T) {
	subject := model.Subject{ID: uuid.New(), Name: "Algebra"}
	t1 := model.Task{ID: uuid.New(), Title: "T1", Status: model.TaskStatusPending, DueDate: datePtr(t, "2025-01-10T00:00:00Z")}
	t2 := model.Task{ID: uuid.New(), Title: "T2", Status: model.TaskStatusCompleted, DueDate: datePtr(t, "2025-01-05T00:00:00Z")}
	t3 := model.Task{ID: uuid.New(), Title: "T3", Status: model.TaskStatusPending}

	summary := BuildSummary([]repository.SubjectWithTasks{
		{Subject: subject, Tasks: []model.Task{t1, t2, t3}},
	})

	if summary.TotalSubjects != 1 {
		t.Errorf("total subjects: got %d, want 1", summary.TotalSubjects)
	}
	if summary.TotalTasks != 3 {
		t.Errorf("total tasks: got %d, want 3", summary.TotalTasks)
	}
	if summary.CompletedTasks != 1 {
		t.Errorf("completed tasks: got %d, want 1", summary.CompletedTasks)
	}
	if summary.PendingTasks != 2 {
		t.Errorf("pending tasks: got %d, want 2", summary.PendingTasks)
	}
	if summary.CompletionPercent == nil || *summary.CompletionPercent != 33 {
		t.Errorf("completion percent: got %v, want 33", summary.CompletionPercent)
	}
	if len(summary.NextTasks) != 1 || summary.NextTasks[0].Title != "T1" {
		t.Errorf("next tasks: got %+v, want [T1]", summary.NextTasks)
	}
	if summary.NextTasks[0].SubjectName != "Algebra" {
		t.Errorf("subject name: got %s, want Algebra", summary.NextTasks[0].SubjectName)
	}
}

func TestBuildSummaryNextTasksRules(t *testing.T) {
	subject := model.Subject{ID: uuid.New(), Name: "History"}
	var tasks []model.Task
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	// Eight dated pending tasks, newest due first in input order.
	for i := 7; i >= 0; i-- {
		due := base.AddDate(0, 0, i)
		tasks = append(tasks, model.Task{
			ID:      uuid.New(),
			Title:   fmt.Sprintf("p%d", i),
			Status:  model.TaskStatusPending,
			DueDate: &due,
		})
	}
	// These must never show up.
	doneDue := base.AddDate(0, 0, -10)
	tasks = append(tasks,
		model.Task{ID: uuid.New(), Title: "done", Status: model.TaskStatusCompleted, DueDate: &doneDue},
		model.Task{ID: uuid.New(), Title: "undated", Status: model.TaskStatusPending},
	)

	summary := BuildSummary([]repository.SubjectWithTasks{{Subject: subject, Tasks: tasks}})

	if len(summary.NextTasks) != 5 {
		t.Fatalf("next tasks length: got %d, want 5", len(summary.NextTasks))
	}
	for i, task := range summary.NextTasks {
		if task.Title == "done" || task.Title == "undated" {
			t.Fatalf("next tasks must exclude completed and undated tasks, got %s", task.Title)
		}
		if i > 0 && task.DueDate.Before(summary.NextTasks[i-1].DueDate) {
			t.Fatalf("next tasks not sorted ascending at index %d", i)
		}
	}
	if summary.NextTasks[0].Title != "p0" {
		t.Errorf("first next task: got %s, want p0", summary.NextTasks[0].Title)
	}
}

func TestBuildSummaryPercentBounds(t *testing.T) {
	subject := model.Subject{ID: uuid.New(), Name: "Physics"}

	cases := []struct {
		name      string
		completed int
		pending   int
		want      int
	}{
		{"none done", 0, 4, 0},
		{"all done", 4, 0, 100},
		{"two thirds", 2, 1, 67},
		{"half", 1, 1, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var tasks []model.Task
			for i := 0; i < tc.completed; i++ {
				tasks = append(tasks, model.Task{ID: uuid.New(), Status: model.TaskStatusCompleted})
			}
			for i := 0; i < tc.pending; i++ {
				tasks = append(tasks, model.Task{ID: uuid.New(), Status: model.TaskStatusPending})
			}

			summary := BuildSummary([]repository.SubjectWithTasks{{Subject: subject, Tasks: tasks}})
			if summary.CompletionPercent == nil {
				t.Fatal("completion percent must be set when tasks exist")
			}
			if *summary.CompletionPercent != tc.want {
				t.Errorf("got %d, want %d", *summary.CompletionPercent, tc.want)
			}
			if *summary.CompletionPercent < 0 || *summary.CompletionPercent > 100 {
				t.Errorf("percent %d out of bounds", *summary.CompletionPercent)
			}
		})
	}
}

func TestBuildSummaryAcrossSubjects(t *testing.T) {
	s1 := model.Subject{ID: uuid.New(), Name: "Math"}
	s2 := model.Subject{ID: uuid.New(), Name: "Chemistry"}
	due1 := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	due2 := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	summary := BuildSummary([]repository.SubjectWithTasks{
		{Subject: s1, Tasks: []model.Task{
			{ID: uuid.New(), Title: "math-exam", Status: model.TaskStatusPending, DueDate: &due1},
		}},
		{Subject: s2, Tasks: []model.Task{
			{ID: uuid.New(), Title: "chem-lab", Status: model.TaskStatusPending, DueDate: &due2},
			{ID: uuid.New(), Title: "chem-quiz", Status: model.TaskStatusCompleted},
		}},
	})

	if summary.TotalSubjects != 2 || summary.TotalTasks != 3 {
		t.Fatalf("counts: got subjects=%d tasks=%d", summary.TotalSubjects, summary.TotalTasks)
	}
	if len(summary.NextTasks) != 2 {
		t.Fatalf("next tasks: got %d, want 2", len(summary.NextTasks))
	}
	if summary.NextTasks[0].Title != "chem-lab" || summary.NextTasks[0].SubjectName != "Chemistry" {
		t.Errorf("earliest due task first: got %+v", summary.NextTasks[0])
	}
}
