package calendar

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// MonthFetcher loads server month data. *api.Client satisfies it.
type MonthFetcher interface {
	CalendarMonth(ctx context.Context, year, month int) (*domain.MonthData, error)
}

// Window is the result of loading the three months around a reference date.
type Window struct {
	Ref    time.Time
	Months map[string]domain.MonthData
	// Failed maps month keys whose fetch failed to the error. Those months
	// are simply absent from Months.
	Failed map[string]error
}

// Aggregator builds an Aggregator over the loaded months plus supplied events.
func (w *Window) Aggregator(supplied []domain.CalendarEvent) *Aggregator {
	return NewAggregator(w.Months, supplied)
}

// Complete reports whether every month of the window loaded.
func (w *Window) Complete() bool {
	return len(w.Failed) == 0
}

// LoadWindow fetches the previous, current and next month of ref
// concurrently. A failed month is left out and reported to obs; it is never
// retried and never fails the whole load. Only a cancelled ctx is returned
// as an error.
func LoadWindow(ctx context.Context, fetcher MonthFetcher, ref time.Time, obs Observer) (*Window, error) {
	if obs == nil {
		obs = NoopObserver{}
	}

	months := AdjacentMonths(ref)
	results := make([]*domain.MonthData, len(months))
	errs := make([]error, len(months))

	var wg sync.WaitGroup
	for i, m := range months {
		wg.Add(1)
		go func(i int, m time.Time) {
			defer wg.Done()
			results[i], errs[i] = fetcher.CalendarMonth(ctx, m.Year(), int(m.Month()))
		}(i, m)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w := &Window{
		Ref:    StartOfMonth(ref),
		Months: make(map[string]domain.MonthData, len(months)),
		Failed: map[string]error{},
	}
	for i, m := range months {
		key := MonthKey(m)
		if errs[i] != nil {
			w.Failed[key] = errs[i]
			obs.OnMonthFailed(key, errs[i])
			continue
		}
		if results[i] != nil {
			w.Months[key] = *results[i]
		}
	}
	return w, nil
}

// Observer receives calendar load failures for logging.
type Observer interface {
	OnMonthFailed(monthKey string, err error)
}

// LogObserver writes failures to an io.Writer.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnMonthFailed(monthKey string, err error) {
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(o.w, "[%s] calendar_month_failed month=%s error=%q\n", ts, monthKey, err.Error())
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnMonthFailed(string, error) {}
