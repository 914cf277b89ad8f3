package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/skillpath/internal/calendar"
	"github.com/alexanderramin/skillpath/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// calendarLoadedMsg carries the window loaded for month. Responses for a
// month the view has since left are dropped.
type calendarLoadedMsg struct {
	month string
	data  *calendarData
	err   error
}

// calendarView shows a month grid with the selected day's events beside it.
type calendarView struct {
	state     *SharedState
	view      time.Time
	weekStart time.Weekday
	data      *calendarData
	loading   bool
	err       error
}

func newCalendarView(state *SharedState) *calendarView {
	return &calendarView{
		state:     state,
		view:      calendar.StartOfMonth(state.SelectedDate),
		weekStart: state.App.Config.WeekStart,
		loading:   true,
	}
}

func (v *calendarView) ID() ViewID    { return ViewCalendar }
func (v *calendarView) Title() string { return "Calendar" }

func (v *calendarView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right", "up", "down"), key.WithHelp("←↑↓→", "move")),
		key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[ ]", "month")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

func (v *calendarView) Init() tea.Cmd {
	return v.load()
}

func (v *calendarView) load() tea.Cmd {
	state := v.state
	ref := v.view
	return func() tea.Msg {
		data, err := loadCalendar(state.Ctx, state.App, ref, true)
		return calendarLoadedMsg{month: calendar.MonthKey(ref), data: data, err: err}
	}
}

// moveTo selects day, switching months and reloading when it leaves the
// current one.
func (v *calendarView) moveTo(day time.Time) tea.Cmd {
	v.state.SelectedDate = day
	month := calendar.StartOfMonth(day)
	if month.Equal(v.view) {
		return nil
	}
	v.view = month
	v.loading = true
	v.err = nil
	return v.load()
}

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarLoadedMsg:
		if msg.month != calendar.MonthKey(v.view) {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.data = msg.data
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		v.err = nil
		return v, v.load()

	case tea.KeyMsg:
		sel := v.state.SelectedDate
		switch msg.String() {
		case "left", "h":
			return v, v.moveTo(sel.AddDate(0, 0, -1))
		case "right", "l":
			return v, v.moveTo(sel.AddDate(0, 0, 1))
		case "up", "k":
			return v, v.moveTo(sel.AddDate(0, 0, -7))
		case "down", "j":
			return v, v.moveTo(sel.AddDate(0, 0, 7))
		case "[":
			return v, v.moveTo(v.view.AddDate(0, -1, 0))
		case "]":
			return v, v.moveTo(v.view.AddDate(0, 1, 0))
		case "t":
			return v, v.moveTo(v.state.App.now())
		case "r":
			v.loading = true
			v.err = nil
			return v, v.load()
		}
	}
	return v, nil
}

func (v *calendarView) View() string {
	if v.loading && v.data == nil {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+ErrorMessage(v.err))
	}

	sel := v.state.SelectedDate
	hasEvents := func(time.Time) bool { return false }
	var dayText string
	if v.data != nil && !v.loading {
		hasEvents = v.data.agg.HasEventsOnDate
		dayText = formatter.FormatDayEvents(sel, v.data.agg.EventsForDate(sel))
	} else {
		dayText = formatter.Dim("Loading...")
	}

	cells := calendar.Cells(v.view, sel, v.state.App.now(), v.weekStart, hasEvents)
	grid := formatter.FormatMonthGrid(v.view, cells, v.weekStart)

	var body string
	if v.state.Width >= 70 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, grid, "    ", dayText)
	} else {
		body = grid + "\n" + dayText
	}

	if v.data != nil && len(v.data.window.Failed) > 0 {
		body += "\n" + formatter.StyleYellow.Render("Could not load: "+strings.Join(v.data.failedMonths(), ", "))
	}
	return "\n" + body
}
