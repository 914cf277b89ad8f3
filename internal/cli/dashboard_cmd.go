package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the interactive dashboard",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Sessions.Current(cmd.Context()); err != nil {
				return err
			}
			p := tea.NewProgram(newAppModel(cmd.Context(), app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
