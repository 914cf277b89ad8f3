// Package reports loads the analytics reports shown by the reports command.
package reports

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Source is the report slice of the REST client. *api.Client satisfies it.
type Source interface {
	QuickInsights(ctx context.Context) (*domain.QuickInsights, error)
	OverviewReport(ctx context.Context) (*domain.OverviewReport, error)
	SkillsReport(ctx context.Context) (*domain.SkillsReport, error)
	TimeManagementReport(ctx context.Context) (*domain.TimeManagementReport, error)
	ConsistencyReport(ctx context.Context) (*domain.ConsistencyReport, error)
	CompetitiveReport(ctx context.Context) (*domain.CompetitiveReport, error)
}

// Bundle holds every report.
type Bundle struct {
	Insights       *domain.QuickInsights
	Overview       *domain.OverviewReport
	Skills         *domain.SkillsReport
	TimeManagement *domain.TimeManagementReport
	Consistency    *domain.ConsistencyReport
	Competitive    *domain.CompetitiveReport
}

// LoadAll fetches all six reports concurrently. The first failure cancels
// the remaining requests and is returned.
func LoadAll(ctx context.Context, src Source) (*Bundle, error) {
	var b Bundle
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		b.Insights, err = src.QuickInsights(ctx)
		return wrap("insights", err)
	})
	g.Go(func() (err error) {
		b.Overview, err = src.OverviewReport(ctx)
		return wrap("overview", err)
	})
	g.Go(func() (err error) {
		b.Skills, err = src.SkillsReport(ctx)
		return wrap("skills", err)
	})
	g.Go(func() (err error) {
		b.TimeManagement, err = src.TimeManagementReport(ctx)
		return wrap("time management", err)
	})
	g.Go(func() (err error) {
		b.Consistency, err = src.ConsistencyReport(ctx)
		return wrap("consistency", err)
	})
	g.Go(func() (err error) {
		b.Competitive, err = src.CompetitiveReport(ctx)
		return wrap("competitive", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &b, nil
}

// LoadInsights fetches only the quick-insights summary.
func LoadInsights(ctx context.Context, src Source) (*domain.QuickInsights, error) {
	in, err := src.QuickInsights(ctx)
	return in, wrap("insights", err)
}

func wrap(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("loading %s report: %w", name, err)
}
