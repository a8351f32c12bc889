// Package export reads and writes the task exchange formats (JSON and
// CSV). Export is exact; import is best-effort with per-record
// diagnostics.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/models"
	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/taskerr"
)

var csvHeader = []string{"id", "title", "description", "created_at", "due_date", "completed", "completed_at", "priority", "tags"}

// record is the on-the-wire task shape: timezone-qualified RFC3339
// instants, integer priority code, tag names as a sequence.
type record struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	CreatedAt   string   `json:"created_at"`
	DueDate     *string  `json:"due_date"`
	Completed   bool     `json:"completed"`
	CompletedAt *string  `json:"completed_at"`
	Priority    int      `json:"priority"`
	Tags        []string `json:"tags"`
}

func fromTask(t models.Task) record {
	r := record{
		ID:        t.ID,
		Title:     t.Title,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		Completed: t.Completed,
		Priority:  int(t.Priority),
		Tags:      t.Tags,
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	if t.Description != "" {
		desc := t.Description
		r.Description = &desc
	}
	if t.DueDate != nil {
		s := t.DueDate.Format(time.RFC3339)
		r.DueDate = &s
	}
	if t.CompletedAt != nil {
		s := t.CompletedAt.Format(time.RFC3339)
		r.CompletedAt = &s
	}
	return r
}

// toTask converts a record back to a task under the best-effort import
// rules: an unparseable created_at skips the record, a bad priority
// defaults to medium, bad optional timestamps drop to absent. Every
// deviation emits a diagnostic.
func (r record) toTask(log *slog.Logger) (*models.Task, bool) {
	if r.Title == "" {
		log.Warn("skipping record: missing title")
		return nil, false
	}

	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		log.Warn("skipping record: unparseable created_at", "title", r.Title, "value", r.CreatedAt)
		return nil, false
	}

	priority, err := models.ParsePriority(r.Priority)
	if err != nil {
		log.Warn("invalid priority, defaulting to medium", "title", r.Title, "value", r.Priority)
		priority = models.PriorityMedium
	}

	task := &models.Task{
		Title:     r.Title,
		CreatedAt: createdAt.Local(),
		Completed: r.Completed,
		Priority:  priority,
		Tags:      r.Tags,
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}
	if r.Description != nil {
		task.Description = *r.Description
	}
	task.DueDate = parseOptional(log, r.Title, "due_date", r.DueDate)
	task.CompletedAt = parseOptional(log, r.Title, "completed_at", r.CompletedAt)
	return task, true
}

func parseOptional(log *slog.Logger, title, field string, value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		log.Warn("unparseable timestamp, dropping field", "title", title, "field", field, "value", *value)
		return nil
	}
	local := t.Local()
	return &local
}

// WriteJSON writes tasks as a pretty-printed JSON array.
func WriteJSON(w io.Writer, tasks []models.Task) error {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, fromTask(t))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return nil
}

// WriteCSV writes tasks as CSV with a header row and comma-joined tags.
func WriteCSV(w io.Writer, tasks []models.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range tasks {
		r := fromTask(t)
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.Title,
			deref(r.Description),
			r.CreatedAt,
			deref(r.DueDate),
			strconv.FormatBool(r.Completed),
			deref(r.CompletedAt),
			strconv.Itoa(r.Priority),
			strings.Join(r.Tags, ","),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToFile exports tasks to path in the given format ("json" or "csv").
func ToFile(path, format string, tasks []models.Task) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(format) {
	case "json":
		return WriteJSON(f, tasks)
	case "csv":
		return WriteCSV(f, tasks)
	default:
		return taskerr.New(taskerr.InvalidArgument, "invalid format %q: use json or csv", format)
	}
}

// FromFile imports tasks from path, dispatching on the file extension.
// Records that fail the best-effort rules are skipped with a
// diagnostic; the rest are returned.
func FromFile(path string, log *slog.Logger) ([]models.Task, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "json":
		return readJSONFile(path, log)
	case "csv":
		return readCSVFile(path, log)
	default:
		return nil, taskerr.New(taskerr.InvalidArgument, "unrecognized file extension %q: use a .json or .csv file", ext)
	}
}

func readJSONFile(path string, log *slog.Logger) ([]models.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var tasks []models.Task
	for _, r := range records {
		if task, ok := r.toTask(log); ok {
			tasks = append(tasks, *task)
		}
	}
	return tasks, nil
}

func readCSVFile(path string, log *slog.Logger) ([]models.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var tasks []models.Task
	for i, row := range rows {
		if i == 0 && len(row) > 0 && strings.EqualFold(row[0], "id") {
			continue // header
		}
		if len(row) < len(csvHeader) {
			log.Warn("skipping record: too few fields", "row", i+1, "fields", len(row))
			continue
		}

		r := record{
			Title:       row[1],
			CreatedAt:   row[3],
			Completed:   strings.EqualFold(row[5], "true"),
			Description: optional(row[2]),
			DueDate:     optional(row[4]),
			CompletedAt: optional(row[6]),
			Tags:        splitTags(row[8]),
		}
		r.Priority, err = strconv.Atoi(row[7])
		if err != nil {
			log.Warn("invalid priority, defaulting to medium", "title", r.Title, "value", row[7])
			r.Priority = int(models.PriorityMedium)
		}

		if task, ok := r.toTask(log); ok {
			tasks = append(tasks, *task)
		}
	}
	return tasks, nil
}

func splitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
