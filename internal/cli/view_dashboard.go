package cli

import (
	"strings"

	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
)

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	insights *domain.QuickInsights
	profile  *domain.AchievementProfile
	err      error
}

// dashboardView is the home screen: today's goals on the left, courses and
// weekly load on the right.
type dashboardView struct {
	state    *SharedState
	insights *domain.QuickInsights
	profile  *domain.AchievementProfile
	loading  bool
	err      error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "goals")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "calendar")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

// loadData refreshes goals, courses and weekly hours in parallel. Insights
// and the achievement profile are optional; a failure there only hides
// their panel.
func (v *dashboardView) loadData() tea.Cmd {
	state := v.state
	return func() tea.Msg {
		g, ctx := errgroup.WithContext(state.Ctx)
		g.Go(func() error { return state.Goals.Refresh(ctx) })
		g.Go(func() error { return state.RefreshCourses(ctx) })
		g.Go(func() error { return state.RefreshWeeklyHours(ctx) })

		var insights *domain.QuickInsights
		g.Go(func() error {
			insights, _ = state.App.Backend.QuickInsights(ctx)
			return nil
		})
		var profile *domain.AchievementProfile
		g.Go(func() error {
			profile, _ = state.App.Backend.AchievementProfile(ctx)
			return nil
		})

		if err := g.Wait(); err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{insights: insights, profile: profile}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.insights = msg.insights
			v.profile = msg.profile
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		v.err = nil
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "g":
			return v, pushView(newGoalsView(v.state))
		case "c":
			return v, pushView(newCalendarView(v.state))
		case "r":
			v.loading = true
			v.err = nil
			return v, v.loadData()
		}
	}
	return v, nil
}

const dashLeftPaneWidth = 44

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+ErrorMessage(v.err))
	}

	left := v.renderGoals()
	right := v.renderCourses()

	if v.state.Width < 90 {
		return left + "\n" + right
	}
	rightWidth := max(v.state.Width-dashLeftPaneWidth-3, 20)
	leftCol := lipgloss.NewStyle().Width(dashLeftPaneWidth).Render(left)
	divider := formatter.Dim("│")
	rightCol := lipgloss.NewStyle().Width(rightWidth).Render(right)
	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol)
}

func (v *dashboardView) renderGoals() string {
	all := v.state.Goals.AllToday()
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("TODAY") + "\n\n")
	if len(all) == 0 {
		b.WriteString("  " + formatter.Dim("No goals for today.") + "\n")
	}
	done := 0
	for _, g := range all {
		title := formatter.StyleFg.Render(formatter.Truncate(g.Title, 28))
		if g.IsCompleted {
			done++
			title = formatter.Dim(formatter.Truncate(g.Title, 28))
		}
		b.WriteString("  " + formatter.GoalCheck(g) + " " + title + " " +
			formatter.Dim(formatter.FormatHours(g.AllocatedHours)) + "\n")
	}
	if len(all) > 0 {
		b.WriteString("\n  " + formatter.GoalSummary(all, done) + "\n")
	}

	if in := v.insights; in != nil && in.Message != "" {
		b.WriteString("\n  " + formatter.StyleGreen.Render(in.Message) + "\n")
	}
	return b.String()
}

func (v *dashboardView) renderCourses() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("THIS WEEK") + "\n\n")
	b.WriteString(formatter.WeeklyHoursLine(v.state.WeeklyHours(), 16) + "\n\n")

	if p := v.profile; p != nil {
		b.WriteString(formatter.StyleHeader.Render("LEVEL") + "\n\n")
		b.WriteString(formatter.LevelProgressLine(p.TotalPoints) + "\n\n")
	}

	b.WriteString(formatter.StyleHeader.Render("COURSES") + "\n\n")
	courses := v.state.Courses()
	if len(courses) == 0 {
		b.WriteString(formatter.Dim("Not enrolled in any courses.") + "\n")
	}
	now := v.state.App.now()
	for _, c := range courses {
		if c.Status == domain.CourseDropped {
			continue
		}
		b.WriteString(formatter.Bold(formatter.Truncate(c.CourseTitle, 30)) + "\n")
		b.WriteString("  " + formatter.RenderCompactBar(c.ProgressPercentage/100, 12, c.Status == domain.CoursePaused) +
			"  " + formatter.CourseStatusPill(c.Status) +
			"  " + formatter.DueDateStyled(c.TargetCompletionDate, now) + "\n")
	}
	return b.String()
}
