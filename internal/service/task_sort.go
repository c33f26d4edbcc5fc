package service

import (
	"sort"

	"github.com/studyhq/studyplan-backend/internal/model"
)

// statusRank orders PENDING before COMPLETED.
func statusRank(s model.TaskStatus) int {
	if s == model.TaskStatusCompleted {
		return 1
	}
	return 0
}

// taskLess is the task list ordering: status first (PENDING before
// COMPLETED), then due date ascending. Tasks without a due date sort after
// dated tasks of the same status. Everything else is left to the stable sort,
// so equal tasks keep their incoming (creation) order.
func taskLess(a, b model.Task) bool {
	if ra, rb := statusRank(a.Status), statusRank(b.Status); ra != rb {
		return ra < rb
	}
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return false
	case a.DueDate == nil:
		return false
	case b.DueDate == nil:
		return true
	}
	return a.DueDate.Before(*b.DueDate)
}

// SortTasks orders tasks in place per taskLess, keeping ties stable.
func SortTasks(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return taskLess(tasks[i], tasks[j])
	})
}
