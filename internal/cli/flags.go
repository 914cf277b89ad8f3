package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/skillpath/internal/config"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*monthFlag)(nil)
	_ pflag.Value = weekStartFlag{}
)

// monthFlag parses --month YYYY-MM into the 1st of that month.
type monthFlag struct {
	t time.Time
}

func (f *monthFlag) String() string {
	if f.t.IsZero() {
		return ""
	}
	return f.t.Format("2006-01")
}

func (f *monthFlag) Set(s string) error {
	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid month %q (want YYYY-MM)", s)
	}
	f.t = t
	return nil
}

func (f *monthFlag) Type() string { return "YYYY-MM" }

// or returns the parsed month, or fallback when the flag was not given.
func (f *monthFlag) or(fallback time.Time) time.Time {
	if f.t.IsZero() {
		return fallback
	}
	return f.t
}

// weekStartFlag parses --week-start sunday|monday.
type weekStartFlag struct {
	day *time.Weekday
}

func (f weekStartFlag) String() string {
	if f.day == nil {
		return ""
	}
	return f.day.String()
}

func (f weekStartFlag) Set(s string) error {
	d, ok := config.ParseWeekStart(s)
	if !ok {
		return fmt.Errorf("invalid week start %q (want sunday or monday)", s)
	}
	*f.day = d
	return nil
}

func (f weekStartFlag) Type() string { return "sunday|monday" }
