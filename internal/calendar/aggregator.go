package calendar

import (
	"fmt"
	"time"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// MonthKey returns the "{year}-{zero-padded month}" key for t.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%d-%02d", t.Year(), int(t.Month()))
}

// Aggregator answers per-date event queries over server month data plus an
// optional caller-supplied flat event list. It is not safe for concurrent
// mutation; build a new one per load.
type Aggregator struct {
	months   map[string]domain.MonthData
	supplied []domain.CalendarEvent
}

// NewAggregator creates an Aggregator. months is keyed by MonthKey; either
// argument may be nil.
func NewAggregator(months map[string]domain.MonthData, supplied []domain.CalendarEvent) *Aggregator {
	if months == nil {
		months = map[string]domain.MonthData{}
	}
	return &Aggregator{months: months, supplied: supplied}
}

// Months returns the month keys held by the aggregator.
func (a *Aggregator) Months() []string {
	keys := make([]string, 0, len(a.months))
	for k := range a.months {
		keys = append(keys, k)
	}
	return keys
}

// HasMonth reports whether data for t's month was loaded.
func (a *Aggregator) HasMonth(t time.Time) bool {
	_, ok := a.months[MonthKey(t)]
	return ok
}

// HasEventsOnDate reports whether any API or supplied event falls on d.
// It sums raw counts from both sources without de-duplication, so it can
// disagree with len(EventsForDate) when the sources overlap; as a presence
// check the answer is the same.
func (a *Aggregator) HasEventsOnDate(d time.Time) bool {
	return a.countOnDate(d) > 0
}

func (a *Aggregator) countOnDate(d time.Time) int {
	key := domain.DateKey(d)
	n := 0
	if md, ok := a.months[MonthKey(d)]; ok {
		n += len(md.Events[key])
	}
	for _, e := range a.supplied {
		if e.EventDate == key {
			n++
		}
	}
	return n
}

// EventsForDate returns the de-duplicated union of API and supplied events
// on d. API events come first; on a key collision the first seen wins.
func (a *Aggregator) EventsForDate(d time.Time) []domain.CalendarEvent {
	key := domain.DateKey(d)

	var candidates []domain.CalendarEvent
	if md, ok := a.months[MonthKey(d)]; ok {
		candidates = append(candidates, md.Events[key]...)
	}
	for _, e := range a.supplied {
		if e.EventDate == key {
			candidates = append(candidates, e)
		}
	}

	seen := make(map[string]bool, len(candidates))
	out := make([]domain.CalendarEvent, 0, len(candidates))
	for _, e := range candidates {
		k := e.DedupKey()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, e)
	}
	return out
}

// EventsInRange returns EventsForDate for each day from start to end inclusive,
// keyed by ISO date, omitting empty days.
func (a *Aggregator) EventsInRange(start, end time.Time) map[string][]domain.CalendarEvent {
	out := map[string][]domain.CalendarEvent{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if evs := a.EventsForDate(d); len(evs) > 0 {
			out[domain.DateKey(d)] = evs
		}
	}
	return out
}
