package cli

import (
	"context"
	"net/http"
	"testing"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/teatest"
	"github.com/alexanderramin/skillpath/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tuiEnv serves everything the dashboard, goals and calendar views load.
func tuiEnv(t *testing.T) (*testEnv, *testutil.GoalBackend) {
	t.Helper()
	env := testApp(t)
	backend := testutil.ServeGoals(env.fake,
		testutil.NewTestGoal("Read chapter 3", testutil.WithGoalID(5), testutil.WithHours(1.5)),
		testutil.NewTestGoal("Watch lecture", testutil.WithGoalID(6)),
	)
	env.fake.JSON(http.MethodGet, "/api/enrolled-courses", http.StatusOK, []domain.EnrolledCourse{
		testutil.NewTestCourse(1, "Go Fundamentals"),
	})
	env.fake.JSON(http.MethodGet, "/api/enrolled-courses/total-hours-this-week", http.StatusOK,
		domain.WeeklyHours{TotalHours: 12, WeeklyLimit: 20})
	serveCalendar(env.fake, map[string]domain.MonthData{
		"2024-04": testutil.NewMonthData(2024, 4,
			testutil.NewTestEvent("2024-04-15", "Midterm quiz", testutil.WithEventType(domain.EventDeadline)),
			testutil.NewTestEvent("2024-04-16", "Started Go Fundamentals"),
		),
	})
	return env, backend
}

func newTUIDriver(t *testing.T, env *testEnv) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newAppModel(context.Background(), env.app), teatest.WithSize(120, 40))
	d.DrainInit()
	return d
}

func TestTUI_DashboardShowsGoalsAndCourses(t *testing.T) {
	env, _ := tuiEnv(t)
	d := newTUIDriver(t, env)

	view := stripANSI(d.View())
	assert.Contains(t, view, "skillpath")
	assert.Contains(t, view, "Read chapter 3")
	assert.Contains(t, view, "0/2 completed")
	assert.Contains(t, view, "Go Fundamentals")
	assert.Contains(t, view, "12h / 20h")
}

func TestTUI_DashboardShowsLevelWhenProfileLoads(t *testing.T) {
	env, _ := tuiEnv(t)
	env.fake.JSON(http.MethodGet, "/api/achievements/profile", http.StatusOK,
		domain.AchievementProfile{Username: "ada", TotalPoints: 150})

	d := newTUIDriver(t, env)
	view := stripANSI(d.View())
	assert.Contains(t, view, "LEVEL")
	assert.Contains(t, view, "150 pts to SKILLED")
}

func TestTUI_DashboardHidesLevelWithoutProfile(t *testing.T) {
	env, _ := tuiEnv(t)
	env.fake.JSON(http.MethodGet, "/api/achievements/profile", http.StatusInternalServerError, map[string]string{})

	d := newTUIDriver(t, env)
	view := stripANSI(d.View())
	assert.Contains(t, view, "Read chapter 3", "optional panels never fail the dashboard")
	assert.NotContains(t, view, "LEVEL")
}

func TestTUI_DashboardLoadError(t *testing.T) {
	env, _ := tuiEnv(t)
	env.fake.JSON(http.MethodGet, "/api/goals/today", http.StatusInternalServerError, map[string]string{"message": "db down"})

	d := newTUIDriver(t, env)
	assert.Contains(t, stripANSI(d.View()), "server returned status 500")
}

func TestTUI_CompleteSelectedGoals(t *testing.T) {
	env, backend := tuiEnv(t)
	d := newTUIDriver(t, env)

	d.PressKey('g')
	view := stripANSI(d.View())
	require.Contains(t, view, "REMAINING")
	assert.Contains(t, view, "Dashboard › Goals")

	d.PressSpace()
	assert.Contains(t, stripANSI(d.View()), "[x] Read chapter 3")

	env.fake.Reset()
	d.PressEnter()

	req, ok := env.fake.Last(http.MethodPost, "/api/goals/complete")
	require.True(t, ok)
	assert.JSONEq(t, `{"completedGoalIds":[5]}`, string(req.Body))
	assert.Positive(t, env.fake.Count(http.MethodGet, "/api/enrolled-courses"), "dependents refreshed")

	view = stripANSI(d.View())
	assert.Contains(t, view, "Completed 1 goal")
	assert.Contains(t, view, "DONE")
	assert.Contains(t, view, "1/2 completed")

	for _, g := range backend.Goals() {
		assert.Equal(t, g.ID == 5, g.IsCompleted, "goal %d", g.ID)
	}
}

func TestTUI_CompleteAppliesBeforeRequest(t *testing.T) {
	env, _ := tuiEnv(t)
	d := newTUIDriver(t, env)
	state := d.Model.(appModel).state

	d.PressKey('g')
	d.PressSpace()
	env.fake.Reset()

	cmd := d.Step(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	require.NotNil(t, cmd)

	assert.Zero(t, env.fake.Count(http.MethodPost, "/api/goals/complete"), "nothing sent yet")
	assert.Equal(t, []int64{6}, domain.GoalIDs(state.Goals.Active()))
	assert.Empty(t, state.Goals.Selected())
	view := stripANSI(d.View())
	assert.NotContains(t, view, "[x] Read chapter 3")
	assert.Contains(t, view, "DONE")
	assert.Contains(t, view, "Saving...")

	d.Drain(cmd)
	assert.Equal(t, 1, env.fake.Count(http.MethodPost, "/api/goals/complete"))
	assert.Contains(t, stripANSI(d.View()), "Completed 1 goal")
}

func TestTUI_SelectAllThenComplete(t *testing.T) {
	env, _ := tuiEnv(t)
	d := newTUIDriver(t, env)

	d.PressKey('g')
	d.PressKey('a')
	d.PressKey('c')

	req, ok := env.fake.Last(http.MethodPost, "/api/goals/complete")
	require.True(t, ok)
	var body domain.CompleteGoalsRequest
	req.DecodeBody(t, &body)
	assert.ElementsMatch(t, []int64{5, 6}, body.CompletedGoalIDs)
	assert.Contains(t, stripANSI(d.View()), "All done for today.")
}

func TestTUI_CompletionFailureReverts(t *testing.T) {
	env, backend := tuiEnv(t)
	backend.SetFailComplete(http.StatusInternalServerError)
	d := newTUIDriver(t, env)

	d.PressKey('g')
	d.PressSpace()
	d.PressEnter()

	view := stripANSI(d.View())
	assert.Contains(t, view, "GOAL COMPLETION FAILED")
	assert.Contains(t, view, "Read chapter 3")
	assert.NotContains(t, view, "DONE")
	assert.Contains(t, view, "0/2 completed")
}

func TestTUI_CompleteWithoutSelection(t *testing.T) {
	env, _ := tuiEnv(t)
	d := newTUIDriver(t, env)

	d.PressKey('g')
	d.PressEnter()

	assert.Contains(t, stripANSI(d.View()), "no goals selected")
	assert.Equal(t, 0, env.fake.Count(http.MethodPost, "/api/goals/complete"))
}

func TestTUI_CalendarNavigation(t *testing.T) {
	env, _ := tuiEnv(t)
	d := newTUIDriver(t, env)

	d.PressKey('c')
	view := stripANSI(d.View())
	require.Contains(t, view, "April 2024")
	assert.Contains(t, view, "Monday, Apr 15 2024")
	assert.Contains(t, view, "Midterm quiz")

	d.PressRight()
	view = stripANSI(d.View())
	assert.Contains(t, view, "Tuesday, Apr 16 2024")
	assert.Contains(t, view, "Started Go Fundamentals")

	env.fake.Reset()
	d.PressKey(']')
	view = stripANSI(d.View())
	assert.Contains(t, view, "May 2024")
	assert.Equal(t, 3, env.fake.Count(http.MethodGet, "/api/calendar/month"))

	d.Press("[[")
	assert.Contains(t, stripANSI(d.View()), "March 2024")

	d.PressKey('t')
	assert.Contains(t, stripANSI(d.View()), "April 2024")
}

func TestTUI_CalendarMovesAcrossMonthEdge(t *testing.T) {
	env, _ := tuiEnv(t)
	d := newTUIDriver(t, env)

	d.PressKey('c')
	for i := 0; i < 3; i++ {
		d.PressDown()
	}
	view := stripANSI(d.View())
	assert.Contains(t, view, "May 2024")
	assert.Contains(t, view, "Monday, May 6 2024")
}

func TestCalendarView_DropsStaleLoads(t *testing.T) {
	env, _ := tuiEnv(t)
	state := newSharedState(context.Background(), env.app)
	v := newCalendarView(state)

	updated, _ := v.Update(calendarLoadedMsg{month: "2023-01", err: assert.AnError})
	cv := updated.(*calendarView)
	assert.True(t, cv.loading)
	assert.NoError(t, cv.err)
}

func TestTUI_EscReturnsAndQQuits(t *testing.T) {
	env, _ := tuiEnv(t)
	d := newTUIDriver(t, env)

	d.PressKey('c')
	require.Contains(t, stripANSI(d.View()), "Calendar")
	d.PressEsc()
	view := stripANSI(d.View())
	assert.NotContains(t, view, "› Calendar")
	assert.Contains(t, view, "Read chapter 3")

	d.PressKey('q')
	assert.True(t, d.Quitting)
}
