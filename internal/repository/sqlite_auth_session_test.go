package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthSession_GetEmpty(t *testing.T) {
	repo := NewSQLiteAuthSessionRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)

	token, err := repo.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestAuthSession_SaveAndGet(t *testing.T) {
	repo := NewSQLiteAuthSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	saved := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, &domain.AuthSession{
		Token:    "tok-1",
		UserID:   42,
		Username: "ada",
		Email:    "ada@example.com",
		SavedAt:  saved,
	}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.Token)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "ada", got.Username)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.True(t, saved.Equal(got.SavedAt))
}

func TestAuthSession_SaveReplacesExisting(t *testing.T) {
	repo := NewSQLiteAuthSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.AuthSession{Token: "old", Username: "a"}))
	require.NoError(t, repo.Save(ctx, &domain.AuthSession{Token: "new", Username: "b"}))

	token, err := repo.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", token)
}

func TestAuthSession_ClearToken(t *testing.T) {
	repo := NewSQLiteAuthSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.AuthSession{Token: "tok"}))
	require.NoError(t, repo.ClearToken(ctx))

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	// Clearing an empty store is not an error.
	assert.NoError(t, repo.Clear(ctx))
}
