package domain

import (
	"fmt"
	"time"
)

// DateLayout is the day-granularity ISO layout used for event dates and
// for the keys of MonthData.Events.
const DateLayout = "2006-01-02"

// CalendarEvent is a read-only entry created server-side when a course is
// enrolled or a deadline is scheduled.
type CalendarEvent struct {
	EventDate        string `json:"eventDate"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	EventType        string `json:"eventType"`
	EnrolledCourseID int64  `json:"enrolledCourseId"`
	CourseTitle      string `json:"courseTitle,omitempty"`
}

// DedupKey is the composite identity used to suppress duplicate events.
// It is not a true primary key: distinct events sharing all three fields
// collapse into one.
func (e CalendarEvent) DedupKey() string {
	return fmt.Sprintf("%d-%s-%s", e.EnrolledCourseID, e.Title, e.EventDate)
}

// MonthData is the payload of GET /api/calendar/month.
type MonthData struct {
	Year   int                        `json:"year"`
	Month  int                        `json:"month"`
	Events map[string][]CalendarEvent `json:"events"`
}

// DateKey formats t as a day-granularity ISO date.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string in the local time zone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}
