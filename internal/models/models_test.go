package models

import (
	"testing"
	"time"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/taskerr"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		value int
		want  Priority
		ok    bool
	}{
		{0, 0, false},
		{1, PriorityLow, true},
		{2, PriorityMedium, true},
		{3, PriorityHigh, true},
		{4, 0, false},
		{-1, 0, false},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.value)
		if tt.ok {
			if err != nil {
				t.Errorf("ParsePriority(%d) failed: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%d) = %v, want %v", tt.value, got, tt.want)
			}
			continue
		}
		if !taskerr.IsKind(err, taskerr.InvalidPriority) {
			t.Errorf("ParsePriority(%d): expected invalid priority error, got %v", tt.value, err)
		}
	}
}

func TestPriorityString(t *testing.T) {
	tests := []struct {
		p    Priority
		want string
	}{
		{PriorityLow, "low"},
		{PriorityMedium, "medium"},
		{PriorityHigh, "high"},
		{Priority(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Priority(%d).String() = %q, want %q", int(tt.p), got, tt.want)
		}
	}
}

func TestNewTaskDefaults(t *testing.T) {
	task := NewTask("title", "", nil, PriorityMedium, nil)

	if task.ID != 0 {
		t.Error("unpersisted task must have no id")
	}
	if task.Completed || task.CompletedAt != nil {
		t.Error("new task must be incomplete")
	}
	if task.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
	if task.Tags == nil {
		t.Error("tags must be an empty slice, not nil")
	}
}

func TestCompleteAndUncompleteTransitions(t *testing.T) {
	task := NewTask("t", "", nil, PriorityLow, nil)

	task.Complete()
	if !task.Completed || task.CompletedAt == nil {
		t.Errorf("after Complete: completed=%v completed_at=%v", task.Completed, task.CompletedAt)
	}

	task.Uncomplete()
	if task.Completed || task.CompletedAt != nil {
		t.Errorf("after Uncomplete: completed=%v completed_at=%v", task.Completed, task.CompletedAt)
	}
}

func TestIsOverdue(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	task := NewTask("t", "", &past, PriorityLow, nil)
	if !task.IsOverdue() {
		t.Error("task due an hour ago should be overdue")
	}

	task.Complete()
	if task.IsOverdue() {
		t.Error("completed task is never overdue")
	}

	task = NewTask("t", "", &future, PriorityLow, nil)
	if task.IsOverdue() {
		t.Error("task due in the future is not overdue")
	}

	task = NewTask("t", "", nil, PriorityLow, nil)
	if task.IsOverdue() {
		t.Error("task with no due date is not overdue")
	}
}

func TestIsDueToday(t *testing.T) {
	now := time.Now()
	tomorrow := now.AddDate(0, 0, 1)

	task := NewTask("t", "", &now, PriorityLow, nil)
	if !task.IsDueToday() {
		t.Error("task due now should be due today")
	}

	task = NewTask("t", "", &tomorrow, PriorityLow, nil)
	if task.IsDueToday() {
		t.Error("task due tomorrow is not due today")
	}

	task = NewTask("t", "", nil, PriorityLow, nil)
	if task.IsDueToday() {
		t.Error("task with no due date is not due today")
	}
}

func TestHasTag(t *testing.T) {
	task := NewTask("t", "", nil, PriorityLow, []string{"work", "urgent"})

	if !task.HasTag("work") {
		t.Error("expected tag to be found")
	}
	if task.HasTag("Work") {
		t.Error("tag match must be case-sensitive")
	}
	if task.HasTag("other") {
		t.Error("unexpected tag match")
	}
}
