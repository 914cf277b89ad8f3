// Package app defines the ports the command layer depends on and the
// session use case that ties the REST client to the persisted login.
package app

import (
	"context"

	"github.com/alexanderramin/skillpath/internal/calendar"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/goals"
	"github.com/alexanderramin/skillpath/internal/reports"
)

type AuthUseCase interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthResponse, error)
}

type CalendarUseCase interface {
	calendar.MonthFetcher
}

type GoalUseCase interface {
	goals.GoalAPI
	CreateGoal(ctx context.Context, g domain.NewGoal) (*domain.Goal, error)
}

type CourseUseCase interface {
	EnrolledCourses(ctx context.Context) ([]domain.EnrolledCourse, error)
	UpdateProgress(ctx context.Context, u domain.ProgressUpdate) (*domain.EnrolledCourse, error)
	CourseStats(ctx context.Context) (*domain.CourseStats, error)
	TotalHoursThisWeek(ctx context.Context) (*domain.WeeklyHours, error)
	HasAvailableTime(ctx context.Context) (*domain.Availability, error)
	EnrollExternal(ctx context.Context, e domain.ExternalEnrollment) (*domain.EnrolledCourse, error)
}

type ScoreUseCase interface {
	UserScores(ctx context.Context) ([]domain.CourseScore, error)
	AddScore(ctx context.Context, s domain.NewCourseScore) (*domain.CourseScore, error)
}

type AchievementUseCase interface {
	AchievementProfile(ctx context.Context) (*domain.AchievementProfile, error)
	Badges(ctx context.Context) ([]domain.Badge, error)
	Leaderboard(ctx context.Context, period domain.LeaderboardPeriod, limit int) ([]domain.LeaderboardEntry, error)
	CalculatePoints(ctx context.Context) (*domain.PointsResult, error)
}

type ReportUseCase interface {
	reports.Source
}

// Backend is the full REST surface. *api.Client implements it.
type Backend interface {
	AuthUseCase
	CalendarUseCase
	GoalUseCase
	CourseUseCase
	ScoreUseCase
	AchievementUseCase
	ReportUseCase
}
