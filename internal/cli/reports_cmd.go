package cli

import (
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/reports"
	"github.com/spf13/cobra"
)

func newReportsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Show learning analytics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := withSpinner(app, cmd, "Loading reports...", func() (*reports.Bundle, error) {
				return reports.LoadAll(cmd.Context(), app.Backend)
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReports(b))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "insights",
		Short: "Show the quick-insights summary only",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := withSpinner(app, cmd, "Loading insights...", func() (*domain.QuickInsights, error) {
				return reports.LoadInsights(cmd.Context(), app.Backend)
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatInsights(in))
			return nil
		},
	})

	return cmd
}
