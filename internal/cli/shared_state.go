package cli

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/goals"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App
	Ctx context.Context

	// Goals is the single goal store behind every view that shows goals.
	Goals *goals.Reconciler

	// Terminal dimensions
	Width  int
	Height int

	// SelectedDate is the calendar day last focused, kept when the
	// calendar view is left and reopened.
	SelectedDate time.Time

	// Loaded from Cmd goroutines, read from View.
	mu      sync.Mutex
	weekly  *domain.WeeklyHours
	courses []domain.EnrolledCourse
}

func newSharedState(ctx context.Context, app *App) *SharedState {
	s := &SharedState{
		App:          app,
		Ctx:          ctx,
		Goals:        goals.NewReconciler(app.Backend, app.GoalObserver),
		SelectedDate: app.now(),
	}
	s.Goals.AddDependent("courses", s.RefreshCourses)
	s.Goals.AddDependent("weekly hours", s.RefreshWeeklyHours)
	return s
}

// RefreshWeeklyHours reloads this week's study hours.
func (s *SharedState) RefreshWeeklyHours(ctx context.Context) error {
	w, err := s.App.Backend.TotalHoursThisWeek(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.weekly = w
	s.mu.Unlock()
	return nil
}

// RefreshCourses reloads the enrolled course list.
func (s *SharedState) RefreshCourses(ctx context.Context) error {
	c, err := s.App.Backend.EnrolledCourses(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.courses = c
	s.mu.Unlock()
	return nil
}

// WeeklyHours returns the last loaded weekly hours, or nil.
func (s *SharedState) WeeklyHours() *domain.WeeklyHours {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weekly
}

// Courses returns the last loaded enrolled courses.
func (s *SharedState) Courses() []domain.EnrolledCourse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.EnrolledCourse(nil), s.courses...)
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
