package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/goals"
	"github.com/spf13/cobra"
)

func newGoalsCmd(app *App) *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "List and complete today's goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := "Today's Goals"
			list, err := withSpinner(app, cmd, "Loading goals...", func() ([]domain.Goal, error) {
				if activeOnly {
					return app.Backend.ActiveTodayGoals(cmd.Context())
				}
				return app.Backend.TodayGoals(cmd.Context())
			})
			if err != nil {
				return err
			}
			if activeOnly {
				title = "Remaining Today"
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGoals(title, list))
			return nil
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only show goals not yet completed")

	cmd.AddCommand(
		defaultSubcommand(cmd, "list"),
		newGoalsAddCmd(app),
		newGoalsCompleteCmd(app),
	)

	return cmd
}

func newGoalsAddCmd(app *App) *cobra.Command {
	var title, description, resource, url string
	var hours float64
	var courseID int64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if resource == "" {
				resource = string(domain.ResourceOther)
				if courseID > 0 {
					resource = string(domain.ResourceCourse)
				}
			}

			g, err := app.Backend.CreateGoal(cmd.Context(), domain.NewGoal{
				Title:            title,
				Description:      description,
				AllocatedHours:   hours,
				ResourceType:     domain.ResourceType(strings.ToUpper(resource)),
				ResourceURL:      url,
				EnrolledCourseID: domain.Int64Ptr(courseID),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created goal #%d %s (%s)\n",
				g.ID, formatter.Bold(g.Title), formatter.FormatHours(g.AllocatedHours))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Goal title")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours allocated (0-24]")
	cmd.Flags().StringVar(&resource, "resource", "", "Resource type: documentation, course, video, article, other")
	cmd.Flags().StringVar(&url, "url", "", "Resource URL")
	cmd.Flags().StringVar(&description, "description", "", "Longer description")
	cmd.Flags().Int64Var(&courseID, "course", 0, "Enrolled course ID the goal belongs to")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newGoalsCompleteCmd(app *App) *cobra.Command {
	var ids []int64
	var courseID int64
	var progress, hours float64

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Mark goals as done, optionally reporting course progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rec := goals.NewReconciler(app.Backend, app.GoalObserver)
			if _, err := withSpinner(app, cmd, "Loading goals...", func() (struct{}, error) {
				return struct{}{}, rec.Refresh(ctx)
			}); err != nil {
				return err
			}

			var update *domain.ProgressUpdate
			if courseID > 0 {
				if !cmd.Flags().Changed("progress") {
					return fmt.Errorf("--progress is required with --course")
				}
				update = &domain.ProgressUpdate{
					EnrolledCourseID:     courseID,
					ProgressPercentage:   progress,
					AdditionalHoursSpent: hours,
				}
			}

			if len(ids) == 0 && app.interactive() {
				picked, pickedUpdate, err := pickGoalsInteractively(cmd, app, rec.Active(), update == nil)
				if err != nil {
					return err
				}
				ids = picked
				if pickedUpdate != nil {
					update = pickedUpdate
				}
			}

			if err := rec.Select(ids...); err != nil {
				return err
			}

			_, err := withSpinner(app, cmd, "Completing goals...", func() (struct{}, error) {
				return struct{}{}, rec.Complete(ctx, goals.CompleteRequest{Progress: update})
			})
			if err != nil {
				if errors.Is(err, goals.ErrCompletionFailed) {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.FormatCompletionFailure(err))
					return &reportedError{err: err}
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatCompleted(ids))
			if update != nil {
				fmt.Fprintf(out, "Reported %.0f%% progress on course #%d\n", update.ProgressPercentage, update.EnrolledCourseID)
			}
			fmt.Fprintln(out, formatter.FormatGoals("Today's Goals", rec.AllToday()))
			return nil
		},
	}

	cmd.Flags().Int64SliceVar(&ids, "id", nil, "Goal ID to complete (repeatable; prompted when omitted)")
	cmd.Flags().Int64Var(&courseID, "course", 0, "Enrolled course ID to report progress for")
	cmd.Flags().Float64Var(&progress, "progress", 0, "New course progress percentage (with --course)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Additional hours spent on the course (with --course)")

	return cmd
}

// pickGoalsInteractively asks which active goals were finished and, when
// askProgress is set, whether to report course progress with them.
func pickGoalsInteractively(cmd *cobra.Command, app *App, active []domain.Goal, askProgress bool) ([]int64, *domain.ProgressUpdate, error) {
	var picked []int64
	form := wizardSelectGoals(active, &picked)
	if form == nil {
		return nil, nil, goals.ErrNoSelection
	}
	if err := form.Run(); err != nil {
		return nil, nil, err
	}
	if !askProgress {
		return picked, nil, nil
	}

	courses, err := app.Backend.EnrolledCourses(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	var courseID int64
	var percent, hours string
	progressForm := wizardCourseProgress(courses, &courseID, &percent, &hours)
	if progressForm == nil {
		return picked, nil, nil
	}
	if err := progressForm.Run(); err != nil {
		return nil, nil, err
	}
	if courseID == 0 {
		return picked, nil, nil
	}

	update, err := parseProgressInput(courseID, percent, hours)
	if err != nil {
		return nil, nil, err
	}
	return picked, update, nil
}
