package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWithoutConfigFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Database != "" {
		t.Errorf("database = %q, want default", cfg.Database)
	}
}

func TestLoadFromExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database: /tmp/custom.db\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Database != "/tmp/custom.db" {
		t.Errorf("database = %q, want /tmp/custom.db", cfg.Database)
	}
}

func TestLoadFromXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", dir)

	appDir := filepath.Join(dir, AppDirName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(appDir, ConfigFileName), []byte("database: ./here.db\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Database != "./here.db" {
		t.Errorf("database = %q, want ./here.db", cfg.Database)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database: [unclosed\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvConfigPath, path)

	if _, err := Load(); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestDatabasePathDefault(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataDir)

	cfg := &Config{}
	path, err := cfg.DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() failed: %v", err)
	}

	want := filepath.Join(dataDir, AppDirName, DBFileName)
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestDatabasePathOverride(t *testing.T) {
	cfg := &Config{Database: "/somewhere/else.db"}
	path, err := cfg.DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() failed: %v", err)
	}
	if path != "/somewhere/else.db" {
		t.Errorf("path = %q", path)
	}
}

func TestDatabasePathExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	cfg := &Config{Database: "~/tasks.db"}
	path, err := cfg.DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath() failed: %v", err)
	}
	if path != filepath.Join(home, "tasks.db") {
		t.Errorf("path = %q", path)
	}
}
