package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoToken indicates a missing, malformed or expired token was found
	// before the request was issued. No network call was made.
	ErrNoToken = errors.New("not logged in")

	// ErrUnauthorized indicates the server rejected the token (401/403).
	// The stored token has been cleared.
	ErrUnauthorized = errors.New("session rejected by server")

	// ErrNotFound indicates the server returned 404.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable indicates the server could not be reached.
	ErrUnavailable = errors.New("server unavailable")

	// ErrInvalidResponse indicates a 2xx response body could not be decoded.
	ErrInvalidResponse = errors.New("invalid response from server")
)

// HTTPError is returned for every non-2xx response.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: server returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: server returned status %d", e.Method, e.Path, e.StatusCode)
}

// Unwrap maps auth and not-found statuses onto their sentinels so callers
// can use errors.Is without inspecting status codes.
func (e *HTTPError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// IsAuthError reports whether err means the user must log in again.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNoToken) || errors.Is(err, ErrUnauthorized)
}

func errorCode(err error) string {
	var httpErr *HTTPError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoToken):
		return "NO_TOKEN"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidResponse):
		return "INVALID_RESPONSE"
	case errors.As(err, &httpErr):
		return fmt.Sprintf("HTTP_%d", httpErr.StatusCode)
	default:
		return "UNKNOWN"
	}
}
