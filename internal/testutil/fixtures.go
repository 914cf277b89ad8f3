package testutil

import (
	"sync/atomic"
	"time"

	"github.com/alexanderramin/skillpath/internal/domain"
)

var testGoalCounter atomic.Int64

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalID(id int64) GoalOption {
	return func(g *domain.Goal) {
		g.ID = id
	}
}

func WithCompleted(at time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.IsCompleted = true
		g.CompletedAt = &at
	}
}

func WithHours(h float64) GoalOption {
	return func(g *domain.Goal) {
		g.AllocatedHours = h
	}
}

func WithGoalCourse(id int64) GoalOption {
	return func(g *domain.Goal) {
		g.EnrolledCourseID = &id
	}
}

func NewTestGoal(title string, opts ...GoalOption) domain.Goal {
	g := domain.Goal{
		ID:             1000 + testGoalCounter.Add(1),
		Title:          title,
		AllocatedHours: 1,
		ResourceType:   domain.ResourceCourse,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Event options
type EventOption func(*domain.CalendarEvent)

func WithEventType(kind string) EventOption {
	return func(e *domain.CalendarEvent) {
		e.EventType = kind
	}
}

func WithEventCourse(id int64, title string) EventOption {
	return func(e *domain.CalendarEvent) {
		e.EnrolledCourseID = id
		e.CourseTitle = title
	}
}

func NewTestEvent(date, title string, opts ...EventOption) domain.CalendarEvent {
	e := domain.CalendarEvent{
		EventDate:        date,
		Title:            title,
		EventType:        domain.EventCourseStart,
		EnrolledCourseID: 1,
		CourseTitle:      "Go Fundamentals",
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewMonthData builds month data from events, grouping them by date.
func NewMonthData(year, month int, events ...domain.CalendarEvent) domain.MonthData {
	md := domain.MonthData{Year: year, Month: month, Events: map[string][]domain.CalendarEvent{}}
	for _, e := range events {
		md.Events[e.EventDate] = append(md.Events[e.EventDate], e)
	}
	return md
}

func NewTestCourse(id int64, title string) domain.EnrolledCourse {
	return domain.EnrolledCourse{
		ID:                 id,
		CourseTitle:        title,
		Platform:           "Coursera",
		Status:             domain.CourseInProgress,
		ProgressPercentage: 25,
		HoursSpent:         6,
		WeeklyHours:        4,
	}
}
