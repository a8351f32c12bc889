// Package ui renders tasks for the terminal: static output for the
// one-shot commands and an interactive browser for `task ui`.
package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/date"
	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/models"
)

func (s *Styles) priorityMark(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return s.PriorityHigh.Render("!!")
	case models.PriorityMedium:
		return s.PriorityMedium.Render(" !")
	default:
		return s.PriorityLow.Render("  ")
	}
}

func (s *Styles) dueLabel(t models.Task) string {
	if t.DueDate == nil {
		return ""
	}
	label := humanize.Time(*t.DueDate)
	switch {
	case t.IsOverdue():
		return s.Overdue.Render("overdue " + label)
	case t.IsDueToday() && !t.Completed:
		return s.DueToday.Render("due " + label)
	default:
		return s.Dim.Render("due " + label)
	}
}

// TaskLine renders one task as a single list row.
func (s *Styles) TaskLine(t models.Task) string {
	check := "[ ]"
	title := t.Title
	if t.Completed {
		check = s.Done.Render("[x]")
		title = s.Done.Render(title)
	}

	parts := []string{
		s.ID.Render(fmt.Sprintf("%4d", t.ID)),
		check,
		s.priorityMark(t.Priority),
		title,
	}
	if due := s.dueLabel(t); due != "" {
		parts = append(parts, due)
	}
	if len(t.Tags) > 0 {
		parts = append(parts, s.Tag.Render("#"+strings.Join(t.Tags, " #")))
	}
	return strings.Join(parts, " ")
}

// TaskList renders tasks one per line, or a placeholder when empty.
func (s *Styles) TaskList(tasks []models.Task) string {
	if len(tasks) == 0 {
		return s.Dim.Render("no tasks") + "\n"
	}
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(s.TaskLine(t))
		b.WriteByte('\n')
	}
	return b.String()
}

// TaskDetail renders the full record of a single task.
func (s *Styles) TaskDetail(t *models.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", s.Title.Render(fmt.Sprintf("Task %d:", t.ID)), t.Title)
	fmt.Fprintf(&b, "%s %s\n", s.Header.Render("priority:"), s.priorityMark(t.Priority)+" "+t.Priority.String())

	status := "active"
	if t.Completed {
		status = "completed"
		if t.CompletedAt != nil {
			status += " " + humanize.Time(*t.CompletedAt)
		}
	}
	fmt.Fprintf(&b, "%s %s\n", s.Header.Render("status:"), status)
	fmt.Fprintf(&b, "%s %s (%s)\n", s.Header.Render("created:"), t.CreatedAt.Format(date.LayoutDateTime), humanize.Time(t.CreatedAt))

	if t.DueDate != nil {
		fmt.Fprintf(&b, "%s %s (%s)\n", s.Header.Render("due:"), t.DueDate.Format(date.LayoutDateTime), humanize.Time(*t.DueDate))
	}
	if t.Description != "" {
		fmt.Fprintf(&b, "%s %s\n", s.Header.Render("description:"), t.Description)
	}
	if len(t.Tags) > 0 {
		fmt.Fprintf(&b, "%s %s\n", s.Header.Render("tags:"), s.Tag.Render(strings.Join(t.Tags, ", ")))
	}
	return b.String()
}

// StatsView renders the counter set plus the known tag names.
func (s *Styles) StatsView(stats *models.Stats, tags []models.Tag) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("Task statistics") + "\n")
	fmt.Fprintf(&b, "%s %d\n", s.Header.Render("total:"), stats.Total)
	fmt.Fprintf(&b, "%s %d\n", s.Header.Render("active:"), stats.Active)
	fmt.Fprintf(&b, "%s %d\n", s.Header.Render("completed:"), stats.Completed)
	fmt.Fprintf(&b, "%s high %d, medium %d, low %d\n", s.Header.Render("active by priority:"),
		stats.ActiveByPriority[models.PriorityHigh],
		stats.ActiveByPriority[models.PriorityMedium],
		stats.ActiveByPriority[models.PriorityLow])
	fmt.Fprintf(&b, "%s %s\n", s.Header.Render("overdue:"), s.Overdue.Render(fmt.Sprintf("%d", stats.Overdue)))
	fmt.Fprintf(&b, "%s %s\n", s.Header.Render("due today:"), s.DueToday.Render(fmt.Sprintf("%d", stats.DueToday)))

	if len(tags) > 0 {
		names := make([]string, len(tags))
		for i, t := range tags {
			names[i] = t.Name
		}
		fmt.Fprintf(&b, "%s %s\n", s.Header.Render("tags:"), s.Tag.Render(strings.Join(names, ", ")))
	}
	return b.String()
}
