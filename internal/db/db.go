// Package db is the task persistence and query layer: schema
// management, the task repository and the tag resolver.
package db

import (
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/taskerr"
)

//go:embed schema.sql
var schema string

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// New opens (or creates) the database at path and ensures the schema
// exists. Parent directories are created as needed. Safe to call on
// every process start.
func New(path string) (*DB, error) {
	if path == "" {
		return nil, taskerr.New(taskerr.InvalidArgument, "database path not set")
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, taskerr.Wrap(taskerr.Storage, err, "create data directory")
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, taskerr.Wrap(taskerr.Storage, err, "open database")
	}

	// SQLite supports a single writer; one connection also keeps
	// :memory: databases alive across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, taskerr.Wrap(taskerr.Storage, err, "initialize schema")
	}

	return &DB{db}, nil
}
