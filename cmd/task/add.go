package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/date"
	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/models"
)

func newAddCmd() *cobra.Command {
	var (
		description string
		due         string
		priority    int
		tags        string
	)

	cmd := &cobra.Command{
		Use:     "add [title]",
		Aliases: []string{"a"},
		Short:   "Add a new task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := models.ParsePriority(priority)
			if err != nil {
				return err
			}

			var duePtr *time.Time
			if due != "" {
				t, err := date.Parse(due)
				if err != nil {
					return err
				}
				duePtr = &t
			}

			repo, err := openDB()
			if err != nil {
				return err
			}
			defer repo.Close()

			task := models.NewTask(args[0], description, duePtr, p, splitTags(tags))
			id, err := repo.CreateTask(task)
			if err != nil {
				return err
			}

			fmt.Printf("Added task %d: %s\n", id, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().StringVarP(&due, "due", "t", "", `due date (YYYY-MM-DD or "YYYY-MM-DD HH:MM")`)
	cmd.Flags().IntVarP(&priority, "priority", "p", int(models.PriorityMedium), "priority (1: low, 2: medium, 3: high)")
	cmd.Flags().StringVarP(&tags, "tags", "g", "", "comma-separated tags")

	return cmd
}
