package model

import "testing"

func TestTaskTypeValid(t *testing.T) {
	for _, typ := range []TaskType{TaskTypeExam, TaskTypeAssignment, TaskTypeProject, TaskTypeStudy} {
		if !typ.Valid() {
			t.Errorf("%s must be valid", typ)
		}
	}
	for _, typ := range []TaskType{"", "INVALID", "exam", "QUIZ"} {
		if typ.Valid() {
			t.Errorf("%q must be invalid", typ)
		}
	}
}

func TestTaskStatusValid(t *testing.T) {
	if !TaskStatusPending.Valid() || !TaskStatusCompleted.Valid() {
		t.Error("enumeration members must be valid")
	}
	for _, status := range []TaskStatus{"", "DONE", "pending", "ARCHIVED"} {
		if status.Valid() {
			t.Errorf("%q must be invalid", status)
		}
	}
}
