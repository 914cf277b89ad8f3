package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/skillpath/internal/calendar"
	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/spf13/cobra"
)

// calendarData is one loaded month window with course deadlines merged in.
type calendarData struct {
	window *calendar.Window
	agg    *calendar.Aggregator
}

// failedMonths returns the month keys that could not be loaded, sorted.
func (d *calendarData) failedMonths() []string {
	keys := make([]string, 0, len(d.window.Failed))
	for k := range d.window.Failed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// loadCalendar loads the window around ref. Deadlines derived from enrolled
// courses are merged in when withDeadlines is set. The load fails only when
// every month of the window failed.
func loadCalendar(ctx context.Context, app *App, ref time.Time, withDeadlines bool) (*calendarData, error) {
	window, err := calendar.LoadWindow(ctx, app.Backend, ref, app.CalendarObserver)
	if err != nil {
		return nil, err
	}
	if len(window.Months) == 0 {
		if err, ok := window.Failed[calendar.MonthKey(ref)]; ok {
			return nil, fmt.Errorf("loading calendar: %w", err)
		}
	}

	var supplied []domain.CalendarEvent
	if withDeadlines {
		courses, err := app.Backend.EnrolledCourses(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading course deadlines: %w", err)
		}
		supplied = calendar.DeadlineEvents(courses)
	}

	return &calendarData{window: window, agg: window.Aggregator(supplied)}, nil
}

func newCalendarCmd(app *App) *cobra.Command {
	var month monthFlag
	var noDeadlines bool
	weekStart := app.Config.WeekStart

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the learning calendar for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			view := calendar.StartOfMonth(month.or(now))

			data, err := withSpinner(app, cmd, "Loading calendar...", func() (*calendarData, error) {
				return loadCalendar(cmd.Context(), app, view, !noDeadlines)
			})
			if err != nil {
				return err
			}

			cells := calendar.Cells(view, now, now, weekStart, data.agg.HasEventsOnDate)
			byDate := data.agg.EventsInRange(calendar.StartOfMonth(view), calendar.EndOfMonth(view))
			fmt.Fprintln(cmd.OutOrStdout(),
				formatter.FormatCalendar(view, cells, weekStart, byDate, data.failedMonths()))
			return nil
		},
	}

	cmd.Flags().Var(&month, "month", "Month to show (default: current month)")
	cmd.Flags().Var(weekStartFlag{day: &weekStart}, "week-start", "First day of the week")
	cmd.Flags().BoolVar(&noDeadlines, "no-deadlines", false, "Hide target completion dates of enrolled courses")

	cmd.AddCommand(newCalendarDayCmd(app))

	return cmd
}

func newCalendarDayCmd(app *App) *cobra.Command {
	var noDeadlines bool

	cmd := &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "List the events of a single day (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := app.now()
			if len(args) == 1 {
				d, err := domain.ParseDate(args[0])
				if err != nil {
					return err
				}
				day = d
			}

			data, err := withSpinner(app, cmd, "Loading calendar...", func() (*calendarData, error) {
				return loadCalendar(cmd.Context(), app, day, !noDeadlines)
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDayEvents(day, data.agg.EventsForDate(day)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noDeadlines, "no-deadlines", false, "Hide target completion dates of enrolled courses")

	return cmd
}
