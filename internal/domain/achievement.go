package domain

import "time"

// AchievementProfile is the payload of GET /api/achievements/profile.
type AchievementProfile struct {
	UserID           int64      `json:"userId"`
	Username         string     `json:"username"`
	TotalPoints      int        `json:"totalPoints"`
	CurrentLevel     BadgeLevel `json:"currentLevel"`
	Rank             int        `json:"rank"`
	CoursesCompleted int        `json:"coursesCompleted"`
	GoalsCompleted   int        `json:"goalsCompleted"`
	CurrentStreak    int        `json:"currentStreak"`
	LongestStreak    int        `json:"longestStreak"`
}

type Badge struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Level          BadgeLevel `json:"level"`
	PointsRequired int        `json:"pointsRequired"`
	Earned         bool       `json:"earned"`
	EarnedAt       *time.Time `json:"earnedAt,omitempty"`
}

type LeaderboardEntry struct {
	Rank        int        `json:"rank"`
	UserID      int64      `json:"userId"`
	Username    string     `json:"username"`
	TotalPoints int        `json:"totalPoints"`
	Level       BadgeLevel `json:"level"`
}

// PointsResult is the payload of POST /api/achievements/calculate-points.
type PointsResult struct {
	PointsAwarded int     `json:"pointsAwarded"`
	TotalPoints   int     `json:"totalPoints"`
	NewBadges     []Badge `json:"newBadges"`
}
