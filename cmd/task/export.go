package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/export"
)

func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export all tasks to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openDB()
			if err != nil {
				return err
			}
			defer repo.Close()

			tasks, err := repo.ListTasks(true)
			if err != nil {
				return err
			}

			if err := export.ToFile(args[0], format, tasks); err != nil {
				return err
			}

			fmt.Printf("Exported %d task(s) to %s\n", len(tasks), args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, csv)")

	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import tasks from a JSON or CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := export.FromFile(args[0], slog.Default())
			if err != nil {
				return err
			}

			repo, err := openDB()
			if err != nil {
				return err
			}
			defer repo.Close()

			// Best-effort batch: report each failed insert and keep going.
			imported := 0
			for i := range tasks {
				if _, err := repo.CreateTask(&tasks[i]); err != nil {
					slog.Warn("failed to import task", "title", tasks[i].Title, "error", err)
					continue
				}
				imported++
			}

			fmt.Printf("Imported %d task(s)\n", imported)
			return nil
		},
	}
}
