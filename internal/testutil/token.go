package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const testSigningKey = "skillpath-test-key"

// NewTestToken mints an HS256 JWT for user 1 that expires at exp.
func NewTestToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":     "1",
		"user_id": 1,
		"exp":     exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

// ValidToken mints a token valid for the next day.
func ValidToken(t *testing.T) string {
	t.Helper()
	return NewTestToken(t, time.Now().Add(24*time.Hour))
}

// MemTokenSource is an in-memory token store for tests.
type MemTokenSource struct {
	mu      sync.Mutex
	token   string
	cleared int
}

func NewMemTokenSource(token string) *MemTokenSource {
	return &MemTokenSource{token: token}
}

func (m *MemTokenSource) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemTokenSource) ClearToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.cleared++
	return nil
}

// Cleared reports how many times ClearToken was called.
func (m *MemTokenSource) Cleared() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cleared
}
