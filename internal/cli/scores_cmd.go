package cli

import (
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/spf13/cobra"
)

func newScoresCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "List recorded assessment scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := withSpinner(app, cmd, "Loading scores...", func() ([]domain.CourseScore, error) {
				return app.Backend.UserScores(cmd.Context())
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatScores(scores))
			return nil
		},
	}

	cmd.AddCommand(
		defaultSubcommand(cmd, "list"),
		newScoresAddCmd(app),
	)

	return cmd
}

func newScoresAddCmd(app *App) *cobra.Command {
	var s domain.NewCourseScore

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an assessment score for an enrolled course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.Backend.AddScore(cmd.Context(), s)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %g/%g (%s) for course #%d\n",
				saved.Score, saved.MaxScore, formatter.ScoreStyle(saved.Percentage()), saved.EnrolledCourseID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&s.EnrolledCourseID, "course", 0, "Enrolled course ID")
	cmd.Flags().StringVar(&s.AssessmentName, "name", "", "Assessment name")
	cmd.Flags().Float64Var(&s.Score, "score", 0, "Points scored")
	cmd.Flags().Float64Var(&s.MaxScore, "max", 100, "Maximum points")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}
