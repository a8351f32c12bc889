package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/date"
	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/models"
	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/taskerr"
)

const taskColumns = "id, title, description, created_at, due_date, completed, completed_at, priority"

// validateTask rejects writes before they touch storage.
func validateTask(task *models.Task) error {
	if task.Title == "" {
		return taskerr.New(taskerr.InvalidArgument, "task title must not be empty")
	}
	if !task.Priority.Valid() {
		return taskerr.New(taskerr.InvalidPriority, "invalid priority %d: must be 1 (low), 2 (medium) or 3 (high)", int(task.Priority))
	}
	return nil
}

// CreateTask inserts the task and its tag associations in one
// transaction and assigns the new id. Duplicate tag names in the input
// collapse to a single association.
func (db *DB) CreateTask(task *models.Task) (int64, error) {
	if err := validateTask(task); err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, taskerr.Wrap(taskerr.Storage, err, "begin transaction")
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO tasks (title, description, created_at, due_date, completed, completed_at, priority)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, task.Title, nullString(task.Description), task.CreatedAt.Unix(),
		nullUnix(task.DueDate), task.Completed, nullUnix(task.CompletedAt), int(task.Priority))
	if err != nil {
		return 0, taskerr.Wrap(taskerr.Storage, err, "insert task")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, taskerr.Wrap(taskerr.Storage, err, "insert task")
	}

	if err := insertTaskTags(tx, id, task.Tags); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, taskerr.Wrap(taskerr.Storage, err, "commit task")
	}

	task.ID = id
	return id, nil
}

// GetTask retrieves a task by id with its tags.
func (db *DB) GetTask(id int64) (*models.Task, error) {
	row := db.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	task, err := scanTask(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, taskerr.New(taskerr.NotFound, "task not found: id %d", id)
	}
	if err != nil {
		return nil, err
	}

	tags, err := db.taskTags(id)
	if err != nil {
		return nil, err
	}
	task.Tags = tags
	return task, nil
}

// ListTasks returns all tasks, or only incomplete ones when
// includeCompleted is false, most recently created first.
func (db *DB) ListTasks(includeCompleted bool) ([]models.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks ORDER BY created_at DESC"
	if !includeCompleted {
		query = "SELECT " + taskColumns + " FROM tasks WHERE completed = 0 ORDER BY created_at DESC"
	}
	return db.listTasks(query)
}

// ListTasksByPriority returns incomplete tasks with the given priority,
// most recently created first.
func (db *DB) ListTasksByPriority(priority models.Priority) ([]models.Task, error) {
	if !priority.Valid() {
		return nil, taskerr.New(taskerr.InvalidPriority, "invalid priority %d: must be 1 (low), 2 (medium) or 3 (high)", int(priority))
	}
	return db.listTasks(
		"SELECT "+taskColumns+" FROM tasks WHERE priority = ? AND completed = 0 ORDER BY created_at DESC",
		int(priority))
}

// ListTasksDueToday returns incomplete tasks due within the current
// local calendar day, earliest due first. The window is evaluated at
// call time.
func (db *DB) ListTasksDueToday() ([]models.Task, error) {
	start, end := date.DayWindow(time.Now())
	return db.listTasks(
		"SELECT "+taskColumns+" FROM tasks WHERE due_date BETWEEN ? AND ? AND completed = 0 ORDER BY due_date ASC",
		start.Unix(), end.Unix())
}

// ListTasksByTag returns incomplete tasks associated with the exact tag
// name, most recently created first. An unknown tag yields an empty
// result, not an error.
func (db *DB) ListTasksByTag(name string) ([]models.Task, error) {
	return db.listTasks(`
		SELECT t.id, t.title, t.description, t.created_at, t.due_date, t.completed, t.completed_at, t.priority
		FROM tasks t
		JOIN task_tags tt ON t.id = tt.task_id
		JOIN tags ON tt.tag_id = tags.id
		WHERE tags.name = ? AND t.completed = 0
		ORDER BY t.created_at DESC
	`, name)
}

// UpdateTask overwrites every mutable field of the stored row and
// replaces the tag associations with exactly the task's current set,
// all in one transaction. The task id must be set.
func (db *DB) UpdateTask(task *models.Task) error {
	if task.ID == 0 {
		return taskerr.New(taskerr.InvalidArgument, "task id not set")
	}
	if err := validateTask(task); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return taskerr.Wrap(taskerr.Storage, err, "begin transaction")
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE tasks SET title = ?, description = ?, due_date = ?, completed = ?, completed_at = ?, priority = ?
		WHERE id = ?
	`, task.Title, nullString(task.Description), nullUnix(task.DueDate),
		task.Completed, nullUnix(task.CompletedAt), int(task.Priority), task.ID)
	if err != nil {
		return taskerr.Wrap(taskerr.Storage, err, "update task %d", task.ID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return taskerr.Wrap(taskerr.Storage, err, "update task %d", task.ID)
	}
	if affected == 0 {
		return taskerr.New(taskerr.NotFound, "task not found: id %d", task.ID)
	}

	if _, err := tx.Exec("DELETE FROM task_tags WHERE task_id = ?", task.ID); err != nil {
		return taskerr.Wrap(taskerr.Storage, err, "clear tags for task %d", task.ID)
	}
	if err := insertTaskTags(tx, task.ID, task.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return taskerr.Wrap(taskerr.Storage, err, "commit task %d", task.ID)
	}
	return nil
}

// CompleteTask marks a task done via a full read-modify-write.
func (db *DB) CompleteTask(id int64) error {
	task, err := db.GetTask(id)
	if err != nil {
		return err
	}
	task.Complete()
	return db.UpdateTask(task)
}

// UncompleteTask reopens a task via a full read-modify-write.
func (db *DB) UncompleteTask(id int64) error {
	task, err := db.GetTask(id)
	if err != nil {
		return err
	}
	task.Uncomplete()
	return db.UpdateTask(task)
}

// DeleteTask removes a task; its associations go with it by cascade.
func (db *DB) DeleteTask(id int64) error {
	result, err := db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return taskerr.Wrap(taskerr.Storage, err, "delete task %d", id)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return taskerr.Wrap(taskerr.Storage, err, "delete task %d", id)
	}
	if affected == 0 {
		return taskerr.New(taskerr.NotFound, "task not found: id %d", id)
	}
	return nil
}

// DeleteCompletedTasks removes every completed task and returns the
// number removed. Zero is success.
func (db *DB) DeleteCompletedTasks() (int64, error) {
	result, err := db.Exec("DELETE FROM tasks WHERE completed = 1")
	if err != nil {
		return 0, taskerr.Wrap(taskerr.Storage, err, "delete completed tasks")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, taskerr.Wrap(taskerr.Storage, err, "delete completed tasks")
	}
	return affected, nil
}

// Stats computes the fixed counter set in sequential reads over the
// same connection.
func (db *DB) Stats() (*models.Stats, error) {
	stats := &models.Stats{ActiveByPriority: make(map[models.Priority]int64)}

	var err error
	if stats.Total, err = db.countTasks(""); err != nil {
		return nil, err
	}
	if stats.Completed, err = db.countTasks("completed = 1"); err != nil {
		return nil, err
	}
	if stats.Active, err = db.countTasks("completed = 0"); err != nil {
		return nil, err
	}

	for _, p := range []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh} {
		n, err := db.countTasks("priority = ? AND completed = 0", int(p))
		if err != nil {
			return nil, err
		}
		stats.ActiveByPriority[p] = n
	}

	now := time.Now()
	if stats.Overdue, err = db.countTasks("due_date < ? AND due_date IS NOT NULL AND completed = 0", now.Unix()); err != nil {
		return nil, err
	}

	start, end := date.DayWindow(now)
	if stats.DueToday, err = db.countTasks("due_date BETWEEN ? AND ? AND completed = 0", start.Unix(), end.Unix()); err != nil {
		return nil, err
	}

	return stats, nil
}

func (db *DB) countTasks(where string, args ...any) (int64, error) {
	query := "SELECT COUNT(*) FROM tasks"
	if where != "" {
		query += " WHERE " + where
	}
	var n int64
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, taskerr.Wrap(taskerr.Storage, err, "count tasks")
	}
	return n, nil
}

func (db *DB) listTasks(query string, args ...any) ([]models.Task, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, taskerr.Wrap(taskerr.Storage, err, "query tasks")
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, taskerr.Wrap(taskerr.Storage, err, "iterate tasks")
	}

	for i := range tasks {
		tags, err := db.taskTags(tasks[i].ID)
		if err != nil {
			return nil, err
		}
		tasks[i].Tags = tags
	}
	return tasks, nil
}

// insertTaskTags resolves each tag name and associates it with the
// task. INSERT OR IGNORE keeps repeated names in the input harmless.
func insertTaskTags(tx *sql.Tx, taskID int64, tags []string) error {
	for _, name := range tags {
		tagID, err := getOrCreateTag(tx, name)
		if err != nil {
			return err
		}
		if _, err := tx.Exec("INSERT OR IGNORE INTO task_tags (task_id, tag_id) VALUES (?, ?)", taskID, tagID); err != nil {
			return taskerr.Wrap(taskerr.Storage, err, "associate tag %q with task %d", name, taskID)
		}
	}
	return nil
}

// scanTask decodes one task row. Raw scan failures pass through so the
// caller can map sql.ErrNoRows; decode failures surface as corrupt
// records rather than defaults.
func scanTask(scan func(dest ...any) error) (*models.Task, error) {
	var (
		id          int64
		title       string
		description sql.NullString
		createdAt   int64
		dueDate     sql.NullInt64
		completed   bool
		completedAt sql.NullInt64
		priority    int
	)
	if err := scan(&id, &title, &description, &createdAt, &dueDate, &completed, &completedAt, &priority); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, taskerr.Wrap(taskerr.Corrupt, err, "decode task row")
	}

	p, err := models.ParsePriority(priority)
	if err != nil {
		return nil, taskerr.Wrap(taskerr.Corrupt, err, "task %d has invalid stored priority", id)
	}

	return &models.Task{
		ID:          id,
		Title:       title,
		Description: description.String,
		CreatedAt:   time.Unix(createdAt, 0),
		DueDate:     unixPtr(dueDate),
		Completed:   completed,
		CompletedAt: unixPtr(completedAt),
		Priority:    p,
		Tags:        []string{},
	}, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullUnix(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

func unixPtr(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0)
	return &t
}
