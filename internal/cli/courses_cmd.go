package cli

import (
	"fmt"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newCoursesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List enrolled courses and track progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := withSpinner(app, cmd, "Loading courses...", func() ([]domain.EnrolledCourse, error) {
				return app.Backend.EnrolledCourses(cmd.Context())
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCourses(courses, app.now()))
			return nil
		},
	}

	cmd.AddCommand(
		defaultSubcommand(cmd, "list"),
		newCoursesStatsCmd(app),
		newCoursesHoursCmd(app),
		newCoursesProgressCmd(app),
		newCoursesEnrollCmd(app),
	)

	return cmd
}

func newCoursesStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate course statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Backend.CourseStats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCourseStats(stats))
			return nil
		},
	}
}

// weeklyLoad is this week's hours plus the server's availability verdict.
type weeklyLoad struct {
	hours *domain.WeeklyHours
	avail *domain.Availability
}

func loadWeeklyLoad(cmd *cobra.Command, app *App) (weeklyLoad, error) {
	var load weeklyLoad
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		load.hours, err = app.Backend.TotalHoursThisWeek(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		load.avail, err = app.Backend.HasAvailableTime(ctx)
		return err
	})
	return load, g.Wait()
}

func newCoursesHoursCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hours",
		Short: "Show hours studied this week against the weekly limit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			load, err := withSpinner(app, cmd, "Loading weekly hours...", func() (weeklyLoad, error) {
				return loadWeeklyLoad(cmd, app)
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWeeklyHours(load.hours, load.avail))
			return nil
		},
	}
}

func newCoursesProgressCmd(app *App) *cobra.Command {
	var courseID int64
	var percent, hours float64

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Report progress on an enrolled course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Backend.UpdateProgress(cmd.Context(), domain.ProgressUpdate{
				EnrolledCourseID:     courseID,
				ProgressPercentage:   percent,
				AdditionalHoursSpent: hours,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProgressUpdated(c))
			return nil
		},
	}

	cmd.Flags().Int64Var(&courseID, "course", 0, "Enrolled course ID")
	cmd.Flags().Float64Var(&percent, "percent", 0, "New progress percentage (0-100)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Additional hours spent (0-24)")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("percent")

	return cmd
}

func newCoursesEnrollCmd(app *App) *cobra.Command {
	var e domain.ExternalEnrollment

	cmd := &cobra.Command{
		Use:   "enroll",
		Short: "Enroll in a course hosted on an external platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Backend.EnrollExternal(cmd.Context(), e)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Enrolled in %s (#%d)\n", formatter.Bold(c.CourseTitle), c.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&e.CourseTitle, "title", "", "Course title")
	cmd.Flags().StringVar(&e.Platform, "platform", "", "Platform name, e.g. Coursera")
	cmd.Flags().StringVar(&e.CourseURL, "url", "", "Course URL")
	cmd.Flags().Float64Var(&e.WeeklyHours, "weekly-hours", 0, "Planned hours per week")
	cmd.Flags().StringVar(&e.TargetCompletionDate, "due", "", "Target completion date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("weekly-hours")

	return cmd
}
