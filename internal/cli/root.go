package cli

import (
	"time"

	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/calendar"
	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/config"
	"github.com/alexanderramin/skillpath/internal/goals"
	"github.com/spf13/cobra"
)

// App holds the configuration and ports used by CLI commands.
type App struct {
	Config   config.Config
	Backend  app.Backend
	Sessions *app.SessionService

	GoalObserver     goals.Observer
	CalendarObserver calendar.Observer

	// IsInteractive reports whether prompts and spinners may be shown.
	IsInteractive func() bool
	// Now overrides the clock in tests.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "skillpath" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "skillpath",
		Short:         "Plan courses, track daily goals and follow your learning calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newCalendarCmd(app),
		newGoalsCmd(app),
		newCoursesCmd(app),
		newScoresCmd(app),
		newAchievementsCmd(app),
		newReportsCmd(app),
		newDashboardCmd(app),
	)

	return root
}

// withSpinner runs fn, showing a spinner on stderr when interactive.
func withSpinner[T any](app *App, cmd *cobra.Command, message string, fn func() (T, error)) (T, error) {
	if app.interactive() {
		stop := formatter.StartSpinner(cmd.ErrOrStderr(), message)
		defer stop()
	}
	return fn()
}

// defaultSubcommand returns a subcommand that runs parent's own action with
// parent's flags, so "goals list" and "goals" behave the same.
func defaultSubcommand(parent *cobra.Command, use string) *cobra.Command {
	sub := &cobra.Command{
		Use:   use,
		Short: parent.Short,
		Args:  cobra.NoArgs,
		RunE:  parent.RunE,
	}
	sub.Flags().AddFlagSet(parent.Flags())
	return sub
}
