package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexanderramin/skillpath/internal/config"
	"github.com/alexanderramin/skillpath/internal/validate"
	"github.com/google/uuid"
)

// Client talks to the learning platform REST API. It is safe for
// concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	tokens    TokenSource
	observer  Observer
	validator *validate.Validator
	now       func() time.Time
}

// NewClient creates a Client for cfg.APIURL. tokens may be nil for clients
// that only call unauthenticated endpoints.
func NewClient(cfg config.Config, tokens TokenSource, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		http: &http.Client{
			Timeout: cfg.HTTPTimeout(),
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		tokens:    tokens,
		observer:  observer,
		validator: validate.New(),
		now:       time.Now,
	}
}

// request describes a single API call.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	auth   bool
}

func get(path string) request {
	return request{method: http.MethodGet, path: path, auth: true}
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	start := time.Now()
	requestID := uuid.New().String()

	status, err := c.send(ctx, req, requestID, out)

	c.observer.OnCallComplete(CallEvent{
		Method:     req.method,
		Path:       req.path,
		RequestID:  requestID,
		StatusCode: status,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
		ErrorCode:  errorCode(err),
	})
	return err
}

func (c *Client) send(ctx context.Context, req request, requestID string, out any) (int, error) {
	var token string
	if req.auth {
		t, err := c.bearerToken(ctx)
		if err != nil {
			return 0, err
		}
		token = t
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return 0, fmt.Errorf("marshaling request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return httpResp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		httpErr := &HTTPError{
			Method:     req.method,
			Path:       req.path,
			StatusCode: httpResp.StatusCode,
			Message:    serverMessage(respBody),
		}
		if req.auth && errors.Is(httpErr, ErrUnauthorized) && c.tokens != nil {
			// The server no longer accepts this token; drop it so the next
			// command short-circuits instead of repeating the round trip.
			_ = c.tokens.ClearToken(ctx)
		}
		return httpResp.StatusCode, httpErr
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return httpResp.StatusCode, nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return httpResp.StatusCode, fmt.Errorf("%w: %s %s: %v", ErrInvalidResponse, req.method, req.path, err)
	}
	return httpResp.StatusCode, nil
}

func (c *Client) bearerToken(ctx context.Context) (string, error) {
	if c.tokens == nil {
		return "", ErrNoToken
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("reading stored token: %w", err)
	}
	if err := CheckToken(token, c.now()); err != nil {
		return "", err
	}
	return token, nil
}

// serverMessage extracts a human-readable message from an error body.
// Spring-style {"message": ...} and {"error": ...} shapes are recognized;
// anything else is returned trimmed and truncated.
func serverMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}
	var shaped struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &shaped); err == nil {
		if shaped.Message != "" {
			return shaped.Message
		}
		if shaped.Error != "" {
			return shaped.Error
		}
	}
	s := string(trimmed)
	if len(s) > 200 {
		s = s[:197] + "..."
	}
	return s
}
