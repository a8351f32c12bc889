package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/taskerr"
)

// newTestRepo creates an in-memory repository for testing
func newTestRepo(t *testing.T) *DB {
	t.Helper()
	repo, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}
	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

func TestNewCreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.db")

	repo, err := New(path)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer repo.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file was not created: %v", err)
	}
}

func TestNewIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")

	repo, err := New(path)
	if err != nil {
		t.Fatalf("first New() failed: %v", err)
	}
	repo.Close()

	// Re-opening an existing database must re-run the schema safely.
	repo, err = New(path)
	if err != nil {
		t.Fatalf("second New() failed: %v", err)
	}
	repo.Close()
}

func TestNewRejectsEmptyPath(t *testing.T) {
	_, err := New("")
	if !taskerr.IsKind(err, taskerr.InvalidArgument) {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	repo := newTestRepo(t)

	var enabled int
	if err := repo.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		t.Fatalf("query pragma: %v", err)
	}
	if enabled != 1 {
		t.Error("foreign key enforcement is off")
	}
}
