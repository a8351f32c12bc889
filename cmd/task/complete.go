package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "complete [id]",
		Aliases: []string{"c"},
		Short:   "Mark a task as completed",
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

			if err := repo.CompleteTask(id); err != nil {
				return err
			}

			fmt.Printf("Completed task %d\n", id)
			return nil
		},
	}
}

func newUncompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "uncomplete [id]",
		Aliases: []string{"uc"},
		Short:   "Mark a task as not completed",
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

			if err := repo.UncompleteTask(id); err != nil {
				return err
			}

			fmt.Printf("Reopened task %d\n", id)
			return nil
		},
	}
}
