package api

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenSource supplies the bearer token. Token is called on every request
// so a login or logout in another process is seen immediately.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}

// CheckToken rejects tokens that are empty, not a JWT, or past their exp
// claim. The signature is not verified; only the server can do that.
func CheckToken(raw string, now time.Time) error {
	if raw == "" {
		return ErrNoToken
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return fmt.Errorf("%w: stored token is malformed", ErrNoToken)
	}
	if claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time) {
		return fmt.Errorf("%w: session expired at %s", ErrNoToken, claims.ExpiresAt.Time.Local().Format("Jan 2 15:04"))
	}
	return nil
}

// TokenExpiry returns the exp claim of raw, if present.
func TokenExpiry(raw string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
