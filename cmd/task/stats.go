package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/ui"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Aliases: []string{"st"},
		Short:   "Show task statistics",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openDB()
			if err != nil {
				return err
			}
			defer repo.Close()

			stats, err := repo.Stats()
			if err != nil {
				return err
			}
			tags, err := repo.ListTags()
			if err != nil {
				return err
			}

			fmt.Print(ui.DefaultStyles().StatsView(stats, tags))
			return nil
		},
	}
}
