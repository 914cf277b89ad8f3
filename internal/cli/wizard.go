package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// skillpathHuhTheme returns a custom huh theme using the Gruvbox palette.
func skillpathHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[✔] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardLogin creates a huh form asking for email and password.
func wizardLogin(email, password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(email).
				Validate(validateRequired("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(validateRequired("password")),
		),
	).WithTheme(skillpathHuhTheme()).WithShowHelp(false)
}

// wizardPassword creates a single masked password prompt.
func wizardPassword(password *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				Description("At least 8 characters").
				EchoMode(huh.EchoModePassword).
				Value(password).
				Validate(validateRequired("password")),
		),
	).WithTheme(skillpathHuhTheme()).WithShowHelp(false)
}

// wizardSelectGoals creates a multi-select over today's active goals.
// It returns nil when there is nothing to select.
func wizardSelectGoals(active []domain.Goal, result *[]int64) *huh.Form {
	if len(active) == 0 {
		return nil
	}
	options := make([]huh.Option[int64], 0, len(active))
	for _, g := range active {
		label := fmt.Sprintf("%s (%s)", g.Title, formatter.FormatHours(g.AllocatedHours))
		options = append(options, huh.NewOption(label, g.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int64]().
				Title("Which goals did you finish?").
				Options(options...).
				Value(result).
				Validate(func(ids []int64) error {
					if len(ids) == 0 {
						return fmt.Errorf("select at least one goal")
					}
					return nil
				}),
		),
	).WithTheme(skillpathHuhTheme()).WithShowHelp(false)
}

// wizardCourseProgress asks whether to report course progress after a
// completion and collects the numbers. courseID is preselected.
func wizardCourseProgress(courses []domain.EnrolledCourse, courseID *int64, percent, hours *string) *huh.Form {
	if len(courses) == 0 {
		return nil
	}
	options := []huh.Option[int64]{huh.NewOption("Skip", int64(0))}
	for _, c := range courses {
		if c.Status == domain.CourseCompleted || c.Status == domain.CourseDropped {
			continue
		}
		label := fmt.Sprintf("%s (%.0f%%)", c.CourseTitle, c.ProgressPercentage)
		options = append(options, huh.NewOption(label, c.ID))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title("Update course progress?").
				Options(options...).
				Value(courseID),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Progress (%)").
				Placeholder("40").
				Value(percent).
				Validate(validatePercent),
			huh.NewInput().
				Title("Hours spent").
				Placeholder("1.5").
				Value(hours).
				Validate(validateHours),
		).WithHideFunc(func() bool { return *courseID == 0 }),
	).WithTheme(skillpathHuhTheme()).WithShowHelp(false)
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// validatePercent accepts a number between 0 and 100.
func validatePercent(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || v > 100 {
		return fmt.Errorf("enter a percentage between 0 and 100")
	}
	return nil
}

// validateHours accepts empty or a number of hours between 0 and 24.
func validateHours(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || v > 24 {
		return fmt.Errorf("enter hours between 0 and 24")
	}
	return nil
}

// parseProgressInput converts the progress form answers into an update.
func parseProgressInput(courseID int64, percent, hours string) (*domain.ProgressUpdate, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(percent), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid progress %q: %w", percent, err)
	}
	var h float64
	if s := strings.TrimSpace(hours); s != "" {
		if h, err = strconv.ParseFloat(s, 64); err != nil {
			return nil, fmt.Errorf("invalid hours %q: %w", hours, err)
		}
	}
	return &domain.ProgressUpdate{
		EnrolledCourseID:     courseID,
		ProgressPercentage:   p,
		AdditionalHoursSpent: h,
	}, nil
}
