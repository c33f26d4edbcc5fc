package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/studyhq/studyplan-backend/internal/model"
)

func datePtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return &parsed
}

func TestSortTasks(t *testing.T) {
	t1 := model.Task{ID: uuid.New(), Title: "T1", Status: model.TaskStatusPending, DueDate: datePtr(t, "2025-01-10T00:00:00Z")}
	t2 := model.Task{ID: uuid.New(), Title: "T2", Status: model.TaskStatusCompleted, DueDate: datePtr(t, "2025-01-05T00:00:00Z")}
	t3 := model.Task{ID: uuid.New(), Title: "T3", Status: model.TaskStatusPending, DueDate: nil}

	tasks := []model.Task{t1, t2, t3}
	SortTasks(tasks)

	want := []string{"T1", "T3", "T2"}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Fatalf("position %d: got %s, want %s", i, tasks[i].Title, title)
		}
	}
}

func TestSortTasksPendingBeforeCompleted(t *testing.T) {
	tasks := []model.Task{
		{Title: "done-early", Status: model.TaskStatusCompleted, DueDate: datePtr(t, "2025-01-01T00:00:00Z")},
		{Title: "pending-late", Status: model.TaskStatusPending, DueDate: datePtr(t, "2025-12-31T00:00:00Z")},
		{Title: "done-undated", Status: model.TaskStatusCompleted},
		{Title: "pending-undated", Status: model.TaskStatusPending},
	}
	SortTasks(tasks)

	want := []string{"pending-late", "pending-undated", "done-early", "done-undated"}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Errorf("position %d: got %s, want %s", i, tasks[i].Title, title)
		}
	}
}

func TestSortTasksNullDueDatesLastWithinStatus(t *testing.T) {
	tasks := []model.Task{
		{Title: "a", Status: model.TaskStatusPending},
		{Title: "b", Status: model.TaskStatusPending, DueDate: datePtr(t, "2025-03-01T00:00:00Z")},
		{Title: "c", Status: model.TaskStatusPending},
		{Title: "d", Status: model.TaskStatusPending, DueDate: datePtr(t, "2025-02-01T00:00:00Z")},
	}
	SortTasks(tasks)

	want := []string{"d", "b", "a", "c"}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Errorf("position %d: got %s, want %s", i, tasks[i].Title, title)
		}
	}
}

func TestSortTasksStableOnTies(t *testing.T) {
	due := datePtr(t, "2025-05-01T00:00:00Z")
	tasks := []model.Task{
		{Title: "first", Status: model.TaskStatusPending, DueDate: due},
		{Title: "second", Status: model.TaskStatusPending, DueDate: due},
		{Title: "third", Status: model.TaskStatusPending, DueDate: due},
	}
	SortTasks(tasks)

	want := []string{"first", "second", "third"}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Errorf("position %d: got %s, want %s (ties must keep input order)", i, tasks[i].Title, title)
		}
	}
}
