package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/skillpath/internal/db"
	"github.com/alexanderramin/skillpath/internal/domain"
)

// SQLiteAuthSessionRepo implements AuthSessionRepo using a SQLite database.
// The table holds at most one row.
type SQLiteAuthSessionRepo struct {
	db db.DBTX
}

// NewSQLiteAuthSessionRepo creates a new SQLiteAuthSessionRepo.
func NewSQLiteAuthSessionRepo(conn db.DBTX) *SQLiteAuthSessionRepo {
	return &SQLiteAuthSessionRepo{db: conn}
}

func (r *SQLiteAuthSessionRepo) Get(ctx context.Context) (*domain.AuthSession, error) {
	query := `SELECT token, user_id, username, email, saved_at FROM auth_session WHERE id = 1`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.AuthSession
	var savedAt string
	err := row.Scan(&s.Token, &s.UserID, &s.Username, &s.Email, &savedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("auth session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning auth session: %w", err)
	}
	s.SavedAt = parseStoredTime(savedAt)
	return &s, nil
}

func (r *SQLiteAuthSessionRepo) Save(ctx context.Context, s *domain.AuthSession) error {
	query := `INSERT OR REPLACE INTO auth_session (id, token, user_id, username, email, saved_at)
		VALUES (1, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.Token,
		s.UserID,
		s.Username,
		s.Email,
		formatStoredTime(s.SavedAt),
	)
	if err != nil {
		return fmt.Errorf("saving auth session: %w", err)
	}
	return nil
}

func (r *SQLiteAuthSessionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM auth_session`); err != nil {
		return fmt.Errorf("clearing auth session: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when no session exists.
// It is read from the store on every call.
func (r *SQLiteAuthSessionRepo) Token(ctx context.Context) (string, error) {
	s, err := r.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return s.Token, nil
}

// ClearToken removes the stored session. It satisfies api.TokenSource.
func (r *SQLiteAuthSessionRepo) ClearToken(ctx context.Context) error {
	return r.Clear(ctx)
}
