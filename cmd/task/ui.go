package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/engineers-hub-ltd-in-house-project/taskman/internal/ui"
)

func newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Browse tasks interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openDB()
			if err != nil {
				return err
			}
			defer repo.Close()

			p := tea.NewProgram(ui.NewBrowser(repo), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}
