package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// AuthSessionRepo persists the single logged-in session of this client.
type AuthSessionRepo interface {
	Get(ctx context.Context) (*domain.AuthSession, error)
	Save(ctx context.Context, s *domain.AuthSession) error
	Clear(ctx context.Context) error
}
