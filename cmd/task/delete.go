package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/taskerr"
)

func newDeleteCmd() *cobra.Command {
	var completed bool

	cmd := &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete a task, or all completed tasks",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openDB()
			if err != nil {
				return err
			}
			defer repo.Close()

			if len(args) == 1 {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := repo.DeleteTask(id); err != nil {
					return err
				}
				fmt.Printf("Deleted task %d\n", id)
				return nil
			}

			if !completed {
				return taskerr.New(taskerr.InvalidArgument, "specify a task id or --completed")
			}

			n, err := repo.DeleteCompletedTasks()
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d completed task(s)\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&completed, "completed", "c", false, "delete all completed tasks")

	return cmd
}
