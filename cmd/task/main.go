package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/config"
	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/db"
	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/taskerr"
)

// Version information set via ldflags
var Version = "dev"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd := &cobra.Command{
		Use:           "task",
		Short:         "Personal task tracker",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newShowCmd(),
		newUpdateCmd(),
		newCompleteCmd(),
		newUncompleteCmd(),
		newDeleteCmd(),
		newStatsCmd(),
		newExportCmd(),
		newImportCmd(),
		newUICmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openDB resolves the configured database path and opens the
// repository, initializing the schema if needed.
func openDB() (*db.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	path, err := cfg.DatabasePath()
	if err != nil {
		return nil, err
	}
	return db.New(path)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, taskerr.New(taskerr.InvalidArgument, "invalid task id %q", arg)
	}
	return id, nil
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
