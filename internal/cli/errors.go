package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/api"
	"github.com/alexanderramin/skillpath/internal/app"
	"github.com/alexanderramin/skillpath/internal/goals"
	"github.com/alexanderramin/skillpath/internal/validate"
)

// reportedError marks an error whose details a command already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// ErrorMessage maps an error to the message shown to the user. It returns
// "" when the command already reported the error itself.
func ErrorMessage(err error) string {
	var httpErr *api.HTTPError
	var verr *validate.ValidationError
	var reported *reportedError

	switch {
	case err == nil, errors.As(err, &reported):
		return ""
	case errors.Is(err, goals.ErrNoSelection):
		return "no goals selected; pass --id or pick goals interactively"
	case errors.Is(err, app.ErrNotLoggedIn), errors.Is(err, api.ErrNoToken):
		return "not logged in; run `skillpath login`"
	case errors.Is(err, api.ErrUnauthorized):
		return "session expired or access denied; run `skillpath login`"
	case errors.Is(err, api.ErrUnavailable):
		return "cannot reach the skillpath server; check SKILLPATH_API_URL"
	case errors.As(err, &verr):
		return verr.Error()
	case errors.Is(err, api.ErrNotFound):
		return "not found"
	case errors.As(err, &httpErr):
		if httpErr.Message != "" {
			return fmt.Sprintf("server returned status %d: %s", httpErr.StatusCode, httpErr.Message)
		}
		return fmt.Sprintf("server returned status %d", httpErr.StatusCode)
	case errors.Is(err, api.ErrInvalidResponse):
		return "the server sent a response this client could not read"
	}
	return err.Error()
}
