package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// CalendarMonth fetches the event map for a month (1-12).
func (c *Client) CalendarMonth(ctx context.Context, year, month int) (*domain.MonthData, error) {
	req := get("/api/calendar/month")
	req.query = url.Values{
		"year":  {strconv.Itoa(year)},
		"month": {strconv.Itoa(month)},
	}
	var out domain.MonthData
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	if out.Year == 0 {
		out.Year = year
	}
	if out.Month == 0 {
		out.Month = month
	}
	if out.Events == nil {
		out.Events = map[string][]domain.CalendarEvent{}
	}
	return &out, nil
}
