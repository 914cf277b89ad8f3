package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// Login exchanges credentials for a token. It does not persist anything.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	if err := c.validator.Struct(creds); err != nil {
		return nil, err
	}
	return c.authenticate(ctx, "/api/auth/login", creds)
}

// Register creates an account and returns a token for it.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.AuthResponse, error) {
	if err := c.validator.Struct(reg); err != nil {
		return nil, err
	}
	return c.authenticate(ctx, "/api/auth/register", reg)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*domain.AuthResponse, error) {
	var out domain.AuthResponse
	req := request{method: http.MethodPost, path: path, body: body}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, fmt.Errorf("%w: %s returned no token", ErrInvalidResponse, path)
	}
	return &out, nil
}
