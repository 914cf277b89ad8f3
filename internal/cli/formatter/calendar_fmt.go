package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/skillpath/internal/calendar"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const eventMarker = "•"

// FormatMonthGrid renders the month grid for cells with weekday headers.
// Days outside the month are dimmed, today is highlighted and the
// selected day is reversed. Days with events carry a marker.
func FormatMonthGrid(view time.Time, cells []calendar.Cell, weekStart time.Weekday) string {
	var b strings.Builder

	title := view.Format("January 2006")
	b.WriteString(StyleHeader.Render(title) + "\n")

	labels := calendar.WeekdayLabels(weekStart)
	for i, l := range labels {
		b.WriteString(Dim(fmt.Sprintf("%-3s", l)))
		if i < len(labels)-1 {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")

	for _, week := range calendar.Weeks(cells) {
		parts := make([]string, 0, len(week))
		for _, c := range week {
			parts = append(parts, renderDay(c))
		}
		b.WriteString(strings.Join(parts, " ") + "\n")
	}
	return b.String()
}

func renderDay(c calendar.Cell) string {
	marker := " "
	if c.HasEvents {
		marker = eventMarker
	}
	text := fmt.Sprintf("%2d%s", c.Date.Day(), marker)

	style := StyleFg
	switch {
	case c.IsToday:
		style = StyleHeader
	case !c.IsCurrentMonth:
		style = StyleDim
	}
	if c.HasEvents && c.IsCurrentMonth && !c.IsToday {
		style = StyleGreen
	}
	if c.IsSelected {
		style = style.Reverse(true)
	}
	return style.Render(text)
}

// FormatDayEvents lists the events of one day.
func FormatDayEvents(day time.Time, events []domain.CalendarEvent) string {
	var b strings.Builder
	b.WriteString(Bold(day.Format("Monday, Jan 2 2006")) + "\n")
	if len(events) == 0 {
		b.WriteString(Dim("  No events") + "\n")
		return b.String()
	}
	for _, e := range events {
		b.WriteString("  " + EventBadge(e.EventType) + "  " + StyleFg.Render(e.Title))
		if e.CourseTitle != "" {
			b.WriteString(Dim(" · " + e.CourseTitle))
		}
		b.WriteString("\n")
		if e.Description != "" {
			b.WriteString("    " + Dim(e.Description) + "\n")
		}
	}
	return b.String()
}

// FormatEventList renders events grouped by date in ascending order.
func FormatEventList(byDate map[string][]domain.CalendarEvent) string {
	if len(byDate) == 0 {
		return Dim("No events this month.") + "\n"
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var rows [][]string
	for _, d := range dates {
		for i, e := range byDate[d] {
			date := d
			if i > 0 {
				date = ""
			}
			rows = append(rows, []string{
				StyleFg.Render(date),
				EventBadge(e.EventType),
				e.Title,
				Dim(domain.CoalesceStr(e.CourseTitle, "--")),
			})
		}
	}
	return RenderTable([]string{"DATE", "TYPE", "TITLE", "COURSE"}, rows)
}

// FormatCalendar renders the grid beside the month's event list when both fit.
func FormatCalendar(view time.Time, cells []calendar.Cell, weekStart time.Weekday, byDate map[string][]domain.CalendarEvent, failed []string) string {
	grid := FormatMonthGrid(view, cells, weekStart)
	list := FormatEventList(byDate)
	body := lipgloss.JoinVertical(lipgloss.Left, grid, list)
	if len(failed) > 0 {
		sort.Strings(failed)
		body += "\n" + StyleYellow.Render("Could not load: "+strings.Join(failed, ", "))
	}
	return RenderBox("Calendar", body)
}
