package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarEvent_DedupKey(t *testing.T) {
	a := CalendarEvent{EnrolledCourseID: 4, Title: "Quiz", EventDate: "2024-04-15", EventType: EventDeadline}
	b := CalendarEvent{EnrolledCourseID: 4, Title: "Quiz", EventDate: "2024-04-15", Description: "other"}
	c := CalendarEvent{EnrolledCourseID: 5, Title: "Quiz", EventDate: "2024-04-15"}

	assert.Equal(t, "4-Quiz-2024-04-15", a.DedupKey())
	assert.Equal(t, a.DedupKey(), b.DedupKey(), "description and type do not affect identity")
	assert.NotEqual(t, a.DedupKey(), c.DedupKey())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local), d)
	assert.Equal(t, "2024-02-29", DateKey(d))

	_, err = ParseDate("2024-13-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")

	_, err = ParseDate("15/04/2024")
	require.Error(t, err)
}
