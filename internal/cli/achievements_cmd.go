package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/achievements"
	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/spf13/cobra"
)

func newAchievementsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "Show points, level and streaks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := withSpinner(app, cmd, "Loading profile...", func() (*domain.AchievementProfile, error) {
				return app.Backend.AchievementProfile(cmd.Context())
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}

	cmd.AddCommand(
		defaultSubcommand(cmd, "profile"),
		newBadgesCmd(app),
		newLeaderboardCmd(app),
		newCalculatePointsCmd(app),
	)

	return cmd
}

func newBadgesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "List earned and locked badges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			badges, err := app.Backend.Badges(cmd.Context())
			if err != nil {
				return err
			}
			earned, locked := achievements.EarnedSplit(badges)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBadges(earned, locked))
			return nil
		},
	}
}

func newLeaderboardCmd(app *App) *cobra.Command {
	var period string
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the points leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.LeaderboardPeriod(strings.ToUpper(strings.ReplaceAll(period, "-", "_")))
			if limit <= 0 {
				limit = app.Config.LeaderboardLimit
			}

			entries, err := withSpinner(app, cmd, "Loading leaderboard...", func() ([]domain.LeaderboardEntry, error) {
				return app.Backend.Leaderboard(cmd.Context(), p, limit)
			})
			if err != nil {
				return err
			}

			highlight := -1
			if sess, err := app.Sessions.Current(cmd.Context()); err == nil {
				highlight = achievements.FindRank(entries, sess.UserID)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLeaderboard(p, entries, highlight))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "weekly", "weekly, monthly or all-time")
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of entries (default from SKILLPATH_LEADERBOARD_LIMIT)")

	return cmd
}

func newCalculatePointsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "calculate",
		Short: "Recalculate points and award new badges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := withSpinner(app, cmd, "Calculating points...", func() (*domain.PointsResult, error) {
				return app.Backend.CalculatePoints(cmd.Context())
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPointsResult(r))
			return nil
		},
	}
}
