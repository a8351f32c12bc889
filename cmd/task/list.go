package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/models"
	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/ui"
)

func newListCmd() *cobra.Command {
	var (
		all      bool
		priority int
		dueToday bool
		tag      string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openDB()
			if err != nil {
				return err
			}
			defer repo.Close()

			var tasks []models.Task
			switch {
			case dueToday:
				tasks, err = repo.ListTasksDueToday()
			case cmd.Flags().Changed("priority"):
				var p models.Priority
				if p, err = models.ParsePriority(priority); err == nil {
					tasks, err = repo.ListTasksByPriority(p)
				}
			case tag != "":
				tasks, err = repo.ListTasksByTag(tag)
			default:
				tasks, err = repo.ListTasks(all)
			}
			if err != nil {
				return err
			}

			fmt.Print(ui.DefaultStyles().TaskList(tasks))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include completed tasks")
	cmd.Flags().IntVarP(&priority, "priority", "p", 0, "filter by priority (1: low, 2: medium, 3: high)")
	cmd.Flags().BoolVar(&dueToday, "due-today", false, "only tasks due today")
	cmd.Flags().StringVarP(&tag, "tags", "t", "", "filter by tag name")

	return cmd
}
