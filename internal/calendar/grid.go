// Package calendar computes month grids and merges calendar events from
// adjacent month windows into per-date lookups.
package calendar

import "time"

// Cell is one derived day of a month grid. Cells are recomputed on every
// render and never cached.
type Cell struct {
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
	IsSelected     bool
	HasEvents      bool
}

// StartOfMonth returns midnight on the 1st of t's month in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns midnight on the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the week-start day on or before t.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	diff := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

// EndOfWeek returns midnight of the last day of the week containing t.
func EndOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	return StartOfWeek(t, weekStart).AddDate(0, 0, 6)
}

// MonthGrid returns the dates to render for ref's month: from the week start
// on or before the 1st through the week end on or after the last day. The
// result length is always a multiple of 7. Only ref's year and month are used.
func MonthGrid(ref time.Time, weekStart time.Weekday) []time.Time {
	first := StartOfWeek(StartOfMonth(ref), weekStart)
	last := EndOfWeek(EndOfMonth(ref), weekStart)

	var days []time.Time
	// AddDate rather than adding 24h keeps midnight across DST changes.
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Cells derives the month-grid cells for view. hasEvents may be nil.
func Cells(view, selected, today time.Time, weekStart time.Weekday, hasEvents func(time.Time) bool) []Cell {
	dates := MonthGrid(view, weekStart)
	cells := make([]Cell, 0, len(dates))
	for _, d := range dates {
		c := Cell{
			Date:           d,
			IsCurrentMonth: d.Year() == view.Year() && d.Month() == view.Month(),
			IsToday:        SameDay(d, today),
			IsSelected:     !selected.IsZero() && SameDay(d, selected),
		}
		if hasEvents != nil {
			c.HasEvents = hasEvents(d)
		}
		cells = append(cells, c)
	}
	return cells
}

// Weeks splits cells into rows of seven.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, len(cells)/7)
	for i := 0; i+7 <= len(cells); i += 7 {
		rows = append(rows, cells[i:i+7])
	}
	return rows
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AdjacentMonths returns the 1st of the previous, current and next month.
func AdjacentMonths(ref time.Time) [3]time.Time {
	cur := StartOfMonth(ref)
	return [3]time.Time{cur.AddDate(0, -1, 0), cur, cur.AddDate(0, 1, 0)}
}

// WeekdayLabels returns two-letter weekday headers starting at weekStart.
func WeekdayLabels(weekStart time.Weekday) []string {
	labels := make([]string, 7)
	for i := 0; i < 7; i++ {
		labels[i] = time.Weekday((int(weekStart) + i) % 7).String()[:2]
	}
	return labels
}
