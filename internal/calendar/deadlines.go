package calendar

import (
	"github.com/alexanderramin/skillpath/internal/domain"
)

// DeadlineEvents derives DEADLINE events from enrolled courses that have a
// target completion date. Completed and dropped courses are skipped.
func DeadlineEvents(courses []domain.EnrolledCourse) []domain.CalendarEvent {
	var events []domain.CalendarEvent
	for _, c := range courses {
		if c.TargetCompletionDate == "" {
			continue
		}
		if c.Status == domain.CourseCompleted || c.Status == domain.CourseDropped {
			continue
		}
		date := c.TargetCompletionDate
		if len(date) > len(domain.DateLayout) {
			date = date[:len(domain.DateLayout)]
		}
		if _, err := domain.ParseDate(date); err != nil {
			continue
		}
		events = append(events, domain.CalendarEvent{
			EventDate:        date,
			Title:            "Target completion",
			Description:      c.CourseTitle + " is due",
			EventType:        domain.EventDeadline,
			EnrolledCourseID: c.ID,
			CourseTitle:      c.CourseTitle,
		})
	}
	return events
}
