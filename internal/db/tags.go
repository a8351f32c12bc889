package db

import (
	"database/sql"
	"errors"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/models"
	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/taskerr"
)

// getOrCreateTag maps a tag name to its id, inserting the row if the
// name is new. Must run inside the caller's transaction; the unique
// constraint on tags.name is the backstop.
func getOrCreateTag(tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM tags WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, taskerr.Wrap(taskerr.Storage, err, "look up tag %q", name)
	}

	result, err := tx.Exec("INSERT INTO tags (name) VALUES (?)", name)
	if err != nil {
		return 0, taskerr.Wrap(taskerr.Storage, err, "create tag %q", name)
	}
	id, err = result.LastInsertId()
	if err != nil {
		return 0, taskerr.Wrap(taskerr.Storage, err, "create tag %q", name)
	}
	return id, nil
}

// taskTags returns the tag names associated with a task, ordered by
// tag id so reads are deterministic across invocations.
func (db *DB) taskTags(taskID int64) ([]string, error) {
	rows, err := db.Query(`
		SELECT t.name FROM tags t
		JOIN task_tags tt ON t.id = tt.tag_id
		WHERE tt.task_id = ?
		ORDER BY t.id
	`, taskID)
	if err != nil {
		return nil, taskerr.Wrap(taskerr.Storage, err, "query tags for task %d", taskID)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, taskerr.Wrap(taskerr.Storage, err, "scan tag")
		}
		tags = append(tags, name)
	}
	if err := rows.Err(); err != nil {
		return nil, taskerr.Wrap(taskerr.Storage, err, "iterate tags")
	}
	return tags, nil
}

// ListTags returns all tags ordered by name.
func (db *DB) ListTags() ([]models.Tag, error) {
	rows, err := db.Query("SELECT id, name FROM tags ORDER BY name")
	if err != nil {
		return nil, taskerr.Wrap(taskerr.Storage, err, "query tags")
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, taskerr.Wrap(taskerr.Storage, err, "scan tag")
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, taskerr.Wrap(taskerr.Storage, err, "iterate tags")
	}
	return tags, nil
}
