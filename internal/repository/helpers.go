package repository

import "time"

// parseStoredTime parses an RFC3339 column value, returning the zero time
// when the value is empty or malformed.
func parseStoredTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// formatStoredTime formats t as RFC3339 in UTC, substituting now for the zero time.
func formatStoredTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(time.RFC3339)
}
