package api

import (
	"context"

	"github.com/alexanderramin/skillpath/internal/domain"
)

func (c *Client) QuickInsights(ctx context.Context) (*domain.QuickInsights, error) {
	var out domain.QuickInsights
	if err := c.do(ctx, get("/api/reports/quick-insights"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) OverviewReport(ctx context.Context) (*domain.OverviewReport, error) {
	var out domain.OverviewReport
	if err := c.do(ctx, get("/api/reports/overview"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SkillsReport(ctx context.Context) (*domain.SkillsReport, error) {
	var out domain.SkillsReport
	if err := c.do(ctx, get("/api/reports/skills"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TimeManagementReport(ctx context.Context) (*domain.TimeManagementReport, error) {
	var out domain.TimeManagementReport
	if err := c.do(ctx, get("/api/reports/time-management"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ConsistencyReport(ctx context.Context) (*domain.ConsistencyReport, error) {
	var out domain.ConsistencyReport
	if err := c.do(ctx, get("/api/reports/consistency"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompetitiveReport(ctx context.Context) (*domain.CompetitiveReport, error) {
	var out domain.CompetitiveReport
	if err := c.do(ctx, get("/api/reports/competitive"), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
