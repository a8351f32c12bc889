package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/date"
	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/models"
)

func newUpdateCmd() *cobra.Command {
	var (
		title       string
		description string
		due         string
		removeDue   bool
		priority    int
		tags        string
	)

	cmd := &cobra.Command{
		Use:     "update [id]",
		Aliases: []string{"u"},
		Short:   "Update fields of a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			repo, err := openDB()
			if err != nil {
				return err
			}
			defer repo.Close()

			// Read-modify-write: only flags that were supplied change
			// fields, then the full entity is re-persisted.
			task, err := repo.GetTask(id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				task.Title = title
			}
			if cmd.Flags().Changed("description") {
				task.Description = description
			}
			if cmd.Flags().Changed("priority") {
				if task.Priority, err = models.ParsePriority(priority); err != nil {
					return err
				}
			}
			if removeDue {
				task.DueDate = nil
			} else if due != "" {
				t, err := date.Parse(due)
				if err != nil {
					return err
				}
				task.DueDate = &t
			}
			if cmd.Flags().Changed("tags") {
				task.Tags = splitTags(tags)
			}

			if err := repo.UpdateTask(task); err != nil {
				return err
			}

			fmt.Printf("Updated task %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVarP(&due, "due", "t", "", `new due date (YYYY-MM-DD or "YYYY-MM-DD HH:MM")`)
	cmd.Flags().BoolVar(&removeDue, "remove-due", false, "clear the due date")
	cmd.Flags().IntVarP(&priority, "priority", "p", 0, "new priority (1: low, 2: medium, 3: high)")
	cmd.Flags().StringVarP(&tags, "tags", "g", "", "new comma-separated tags (replaces the current set)")

	return cmd
}
