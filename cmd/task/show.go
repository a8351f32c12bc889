package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/ui"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show [id]",
		Aliases: []string{"s"},
		Short:   "Show the details of a task",
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

			task, err := repo.GetTask(id)
			if err != nil {
				return err
			}

			fmt.Print(ui.DefaultStyles().TaskDetail(task))
			return nil
		},
	}
}
