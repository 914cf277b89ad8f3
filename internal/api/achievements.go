package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/validate"
)

func (c *Client) AchievementProfile(ctx context.Context) (*domain.AchievementProfile, error) {
	var out domain.AchievementProfile
	if err := c.do(ctx, get("/api/achievements/profile"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Badges(ctx context.Context) ([]domain.Badge, error) {
	var out []domain.Badge
	if err := c.do(ctx, get("/api/achievements/badges"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Leaderboard returns the top entries for a period.
func (c *Client) Leaderboard(ctx context.Context, period domain.LeaderboardPeriod, limit int) ([]domain.LeaderboardEntry, error) {
	if !domain.ValidLeaderboardPeriods[string(period)] {
		return nil, fmt.Errorf("%w: unknown leaderboard period %q", validate.ErrInvalidInput, period)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: leaderboard limit must be positive", validate.ErrInvalidInput)
	}
	req := get("/api/achievements/leaderboard")
	req.query = url.Values{
		"period": {string(period)},
		"limit":  {strconv.Itoa(limit)},
	}
	var out []domain.LeaderboardEntry
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CalculatePoints asks the server to recompute the user's points.
func (c *Client) CalculatePoints(ctx context.Context) (*domain.PointsResult, error) {
	var out domain.PointsResult
	req := request{method: http.MethodPost, path: "/api/achievements/calculate-points", auth: true}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
