package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/skillpath/internal/api"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/repository"
)

// ErrNotLoggedIn is returned when no usable session is stored.
var ErrNotLoggedIn = errors.New("not logged in")

// SessionService logs users in and out and persists the session.
type SessionService struct {
	auth  AuthUseCase
	store repository.AuthSessionRepo
	now   func() time.Time
}

func NewSessionService(auth AuthUseCase, store repository.AuthSessionRepo) *SessionService {
	return &SessionService{auth: auth, store: store, now: time.Now}
}

// Login authenticates and replaces any stored session.
func (s *SessionService) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	resp, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, resp)
}

// Register creates an account and stores its session.
func (s *SessionService) Register(ctx context.Context, reg domain.Registration) (*domain.AuthSession, error) {
	resp, err := s.auth.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, resp)
}

func (s *SessionService) persist(ctx context.Context, resp *domain.AuthResponse) (*domain.AuthSession, error) {
	sess := &domain.AuthSession{
		Token:    resp.Token,
		UserID:   resp.UserID,
		Username: resp.Username,
		Email:    resp.Email,
		SavedAt:  s.now().UTC(),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Logout forgets the stored session. It succeeds when none exists.
func (s *SessionService) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// Current returns the stored session. A missing or expired session yields
// an error wrapping ErrNotLoggedIn; an expired one is also cleared.
func (s *SessionService) Current(ctx context.Context) (*domain.AuthSession, error) {
	sess, err := s.store.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}
	if err := api.CheckToken(sess.Token, s.now()); err != nil {
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			return nil, clearErr
		}
		return nil, fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	}
	return sess, nil
}

// Expiry returns when the current session's token expires, if it carries one.
func (s *SessionService) Expiry(sess *domain.AuthSession) (time.Time, bool) {
	return api.TokenExpiry(sess.Token)
}
