// Package models holds the task domain entities.
package models

import (
	"time"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/taskerr"
)

// Priority is the task priority code as persisted.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// ParsePriority validates an integer priority code.
func ParsePriority(v int) (Priority, error) {
	p := Priority(v)
	if !p.Valid() {
		return 0, taskerr.New(taskerr.InvalidPriority, "invalid priority %d: must be 1 (low), 2 (medium) or 3 (high)", v)
	}
	return p, nil
}

// Valid reports whether p is one of the three defined levels.
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	}
	return "unknown"
}

// Tag is a normalized label. Name is the sole natural key.
type Tag struct {
	ID   int64
	Name string
}

// Task is the central entity. ID is zero until the task is first
// persisted; the repository assigns it.
type Task struct {
	ID          int64
	Title       string
	Description string // empty means none
	CreatedAt   time.Time
	DueDate     *time.Time
	Completed   bool
	CompletedAt *time.Time
	Priority    Priority
	Tags        []string
}

// NewTask constructs an unpersisted task with CreatedAt set to now.
func NewTask(title, description string, due *time.Time, priority Priority, tags []string) *Task {
	if tags == nil {
		tags = []string{}
	}
	return &Task{
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
		DueDate:     due,
		Priority:    priority,
		Tags:        tags,
	}
}

// Complete marks the task done and stamps CompletedAt.
func (t *Task) Complete() {
	now := time.Now()
	t.Completed = true
	t.CompletedAt = &now
}

// Uncomplete reopens the task and clears CompletedAt.
func (t *Task) Uncomplete() {
	t.Completed = false
	t.CompletedAt = nil
}

// IsOverdue reports whether an incomplete task's due date has passed.
func (t *Task) IsOverdue() bool {
	if t.Completed || t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(time.Now())
}

// IsDueToday reports whether the due date falls on the current local day.
func (t *Task) IsDueToday() bool {
	if t.DueDate == nil {
		return false
	}
	now := time.Now()
	y1, m1, d1 := t.DueDate.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// HasTag reports whether the task carries the exact tag name.
func (t *Task) HasTag(name string) bool {
	for _, tag := range t.Tags {
		if tag == name {
			return true
		}
	}
	return false
}

// Stats is the fixed counter set reported by the repository.
type Stats struct {
	Total            int64
	Completed        int64
	Active           int64
	ActiveByPriority map[Priority]int64
	Overdue          int64
	DueToday         int64
}
