package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestMonthGrid_March2024SundayStart(t *testing.T) {
	days := MonthGrid(date(2024, time.March, 15), time.Sunday)

	require.Len(t, days, 42)
	assert.Equal(t, "2024-02-25", days[0].Format("2006-01-02"))
	assert.Equal(t, "2024-04-06", days[41].Format("2006-01-02"))
}

func TestMonthGrid_LengthIsMultipleOfSeven(t *testing.T) {
	for _, ws := range []time.Weekday{time.Sunday, time.Monday, time.Saturday} {
		for m := time.January; m <= time.December; m++ {
			days := MonthGrid(date(2025, m, 1), ws)
			assert.Zero(t, len(days)%7, "%s starting %s", m, ws)
			assert.Equal(t, ws, days[0].Weekday())
			assert.Equal(t, (ws+6)%7, days[len(days)-1].Weekday())
		}
	}
}

func TestMonthGrid_ContiguousAndCoversMonth(t *testing.T) {
	days := MonthGrid(date(2024, time.February, 10), time.Monday)

	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].AddDate(0, 0, 1), days[i])
	}
	assert.False(t, days[0].After(date(2024, time.February, 1)))
	assert.False(t, days[len(days)-1].Before(date(2024, time.February, 29)))
}

func TestMonthGrid_FourWeekFebruary(t *testing.T) {
	// February 2015 starts on a Sunday and has 28 days.
	days := MonthGrid(date(2015, time.February, 1), time.Sunday)
	assert.Len(t, days, 28)
}

func TestStartEndOfWeek(t *testing.T) {
	wed := date(2024, time.March, 13)

	assert.Equal(t, date(2024, time.March, 10), StartOfWeek(wed, time.Sunday))
	assert.Equal(t, date(2024, time.March, 16), EndOfWeek(wed, time.Sunday))
	assert.Equal(t, date(2024, time.March, 11), StartOfWeek(wed, time.Monday))
	assert.Equal(t, date(2024, time.March, 17), EndOfWeek(wed, time.Monday))

	sun := date(2024, time.March, 10)
	assert.Equal(t, sun, StartOfWeek(sun, time.Sunday))
}

func TestStartOfWeek_DropsTimeOfDay(t *testing.T) {
	at := time.Date(2024, time.March, 13, 17, 45, 3, 0, time.Local)
	assert.Equal(t, date(2024, time.March, 10), StartOfWeek(at, time.Sunday))
}

func TestCells_Flags(t *testing.T) {
	view := date(2024, time.March, 1)
	today := time.Date(2024, time.March, 5, 9, 30, 0, 0, time.Local)
	selected := date(2024, time.March, 20)
	hasEvents := func(d time.Time) bool { return d.Day() == 20 && d.Month() == time.March }

	cells := Cells(view, selected, today, time.Sunday, hasEvents)
	require.Len(t, cells, 42)

	var current, todays, selects, withEvents int
	for _, c := range cells {
		if c.IsCurrentMonth {
			current++
		}
		if c.IsToday {
			todays++
			assert.Equal(t, 5, c.Date.Day())
		}
		if c.IsSelected {
			selects++
		}
		if c.HasEvents {
			withEvents++
			assert.True(t, c.IsSelected)
		}
	}
	assert.Equal(t, 31, current)
	assert.Equal(t, 1, todays)
	assert.Equal(t, 1, selects)
	assert.Equal(t, 1, withEvents)
	assert.False(t, cells[0].IsCurrentMonth)
}

func TestCells_NilPredicateAndZeroSelection(t *testing.T) {
	cells := Cells(date(2024, time.March, 1), time.Time{}, date(2023, time.January, 1), time.Sunday, nil)
	for _, c := range cells {
		assert.False(t, c.HasEvents)
		assert.False(t, c.IsSelected)
		assert.False(t, c.IsToday)
	}
}

func TestWeeks(t *testing.T) {
	cells := Cells(date(2024, time.March, 1), time.Time{}, time.Time{}, time.Sunday, nil)
	rows := Weeks(cells)
	require.Len(t, rows, 6)
	for _, r := range rows {
		assert.Len(t, r, 7)
		assert.Equal(t, time.Sunday, r[0].Date.Weekday())
	}
}

func TestAdjacentMonths_YearBoundaries(t *testing.T) {
	jan := AdjacentMonths(date(2024, time.January, 31))
	assert.Equal(t, date(2023, time.December, 1), jan[0])
	assert.Equal(t, date(2024, time.January, 1), jan[1])
	assert.Equal(t, date(2024, time.February, 1), jan[2])

	dec := AdjacentMonths(date(2024, time.December, 31))
	assert.Equal(t, date(2025, time.January, 1), dec[2])
}

func TestWeekdayLabels(t *testing.T) {
	assert.Equal(t, []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}, WeekdayLabels(time.Sunday))
	assert.Equal(t, []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, WeekdayLabels(time.Monday))
}
