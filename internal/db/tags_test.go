package db

import (
	"testing"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/models"
)

func TestTagDeduplicationAcrossTasks(t *testing.T) {
	repo := newTestRepo(t)

	mustCreate(t, repo, models.NewTask("one", "", nil, models.PriorityMedium, []string{"x"}))
	mustCreate(t, repo, models.NewTask("two", "", nil, models.PriorityMedium, []string{"x", "y"}))

	var n int64
	if err := repo.QueryRow("SELECT COUNT(*) FROM tags WHERE name = ?", "x").Scan(&n); err != nil {
		t.Fatalf("count tags: %v", err)
	}
	if n != 1 {
		t.Errorf("tag %q has %d rows, want 1", "x", n)
	}

	tasks, err := repo.ListTasksByTag("x")
	if err != nil {
		t.Fatalf("ListTasksByTag failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("got %d tasks tagged %q, want 2", len(tasks), "x")
	}
	for _, task := range tasks {
		if !task.HasTag("x") {
			t.Errorf("task %d read without tag %q: %v", task.ID, "x", task.Tags)
		}
	}
}

func TestTagReusedIDAcrossTasks(t *testing.T) {
	repo := newTestRepo(t)

	mustCreate(t, repo, models.NewTask("one", "", nil, models.PriorityMedium, []string{"shared"}))
	mustCreate(t, repo, models.NewTask("two", "", nil, models.PriorityMedium, []string{"shared"}))

	rows, err := repo.Query("SELECT DISTINCT tag_id FROM task_tags")
	if err != nil {
		t.Fatalf("query associations: %v", err)
	}
	defer rows.Close()

	ids := 0
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("scan: %v", err)
		}
		ids++
	}
	if ids != 1 {
		t.Errorf("found %d distinct tag ids, want 1", ids)
	}
}

func TestListTags(t *testing.T) {
	repo := newTestRepo(t)

	tags, err := repo.ListTags()
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("got %d tags on empty store, want 0", len(tags))
	}

	mustCreate(t, repo, models.NewTask("one", "", nil, models.PriorityMedium, []string{"zeta", "alpha"}))

	tags, err = repo.ListTags()
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("got %d tags, want 2", len(tags))
	}
	// Ordered by name.
	if tags[0].Name != "alpha" || tags[1].Name != "zeta" {
		t.Errorf("got order %q, %q", tags[0].Name, tags[1].Name)
	}

	// Tag names are case-sensitive distinct values.
	mustCreate(t, repo, models.NewTask("two", "", nil, models.PriorityMedium, []string{"Alpha"}))
	tags, err = repo.ListTags()
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	if len(tags) != 3 {
		t.Errorf("got %d tags, want 3", len(tags))
	}
}
