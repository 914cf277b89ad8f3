package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all client configuration.
type Config struct {
	APIURL           string
	DBPath           string
	HTTPTimeoutMs    int // 0 disables the client-side timeout
	LogCalls         bool
	WeekStart        time.Weekday
	LeaderboardLimit int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	dbPath := "skillpath.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".skillpath", "skillpath.db")
	}
	return Config{
		APIURL:           "http://localhost:8080",
		DBPath:           dbPath,
		HTTPTimeoutMs:    0,
		LogCalls:         false,
		WeekStart:        time.Sunday,
		LeaderboardLimit: 10,
	}
}

// LoadConfig loads optional dotenv files and then reads SKILLPATH_*
// environment variables, falling back to defaults for unset values.
// Variables already present in the environment win over dotenv files.
func LoadConfig() Config {
	loadDotEnv()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SKILLPATH_API_URL"); v != "" {
		cfg.APIURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("SKILLPATH_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SKILLPATH_HTTP_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.HTTPTimeoutMs = n
		}
	}
	if v := os.Getenv("SKILLPATH_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SKILLPATH_WEEK_START"); v != "" {
		if d, ok := ParseWeekStart(v); ok {
			cfg.WeekStart = d
		}
	}
	if v := os.Getenv("SKILLPATH_LEADERBOARD_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LeaderboardLimit = n
		}
	}

	return cfg
}

// HTTPTimeout returns the configured client timeout; zero means none.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutMs) * time.Millisecond
}

// ParseWeekStart accepts "sunday" or "monday" (case-insensitive, short forms allowed).
func ParseWeekStart(s string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday", "sun":
		return time.Sunday, true
	case "monday", "mon":
		return time.Monday, true
	}
	return time.Sunday, false
}

func loadDotEnv() {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".skillpath", ".env"))
	}
	paths = append(paths, ".env")

	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		// godotenv.Load never overrides variables that are already set.
		_ = godotenv.Load(p)
	}
}
