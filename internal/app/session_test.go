package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alexanderramin/skillpath/internal/api"
	"github.com/alexanderramin/skillpath/internal/config"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/repository"
	"github.com/alexanderramin/skillpath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) (*SessionService, *testutil.FakeAPI, *repository.SQLiteAuthSessionRepo) {
	t.Helper()
	fake := testutil.NewFakeAPI(t)
	repo := repository.NewSQLiteAuthSessionRepo(testutil.NewTestDB(t))
	cfg := config.DefaultConfig()
	cfg.APIURL = fake.URL()
	client := api.NewClient(cfg, repo, api.NoopObserver{})
	return NewSessionService(client, repo), fake, repo
}

func TestSessionService_LoginPersistsSession(t *testing.T) {
	svc, fake, repo := newSessionService(t)
	token := testutil.ValidToken(t)
	fake.JSON(http.MethodPost, "/api/auth/login", http.StatusOK, domain.AuthResponse{
		Token: token, UserID: 7, Username: "ada", Email: "ada@example.com",
	})

	sess, err := svc.Login(context.Background(), domain.Credentials{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "ada", sess.Username)

	stored, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, token, stored.Token)
	assert.Equal(t, int64(7), stored.UserID)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", current.Email)
	exp, ok := svc.Expiry(current)
	assert.True(t, ok)
	assert.True(t, exp.After(time.Now()))
}

func TestSessionService_LoginFailureKeepsPreviousSession(t *testing.T) {
	svc, fake, repo := newSessionService(t)
	old := testutil.ValidToken(t)
	require.NoError(t, repo.Save(context.Background(), &domain.AuthSession{Token: old, Username: "old"}))
	fake.JSON(http.MethodPost, "/api/auth/login", http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})

	_, err := svc.Login(context.Background(), domain.Credentials{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, api.ErrUnauthorized)

	tok, err := repo.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, old, tok)
}

func TestSessionService_Register(t *testing.T) {
	svc, fake, _ := newSessionService(t)
	fake.JSON(http.MethodPost, "/api/auth/register", http.StatusOK, domain.AuthResponse{
		Token: testutil.ValidToken(t), UserID: 8, Username: "grace",
	})

	sess, err := svc.Register(context.Background(), domain.Registration{
		Username: "grace", Email: "grace@example.com", Password: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), sess.UserID)
}

func TestSessionService_CurrentWithoutSession(t *testing.T) {
	svc, _, _ := newSessionService(t)
	_, err := svc.Current(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestSessionService_CurrentExpiredClears(t *testing.T) {
	svc, _, repo := newSessionService(t)
	expired := testutil.NewTestToken(t, time.Now().Add(-time.Hour))
	require.NoError(t, repo.Save(context.Background(), &domain.AuthSession{Token: expired, Username: "ada"}))

	_, err := svc.Current(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.ErrorIs(t, err, api.ErrNoToken)

	_, err = repo.Get(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionService_Logout(t *testing.T) {
	svc, _, repo := newSessionService(t)
	require.NoError(t, repo.Save(context.Background(), &domain.AuthSession{Token: testutil.ValidToken(t)}))

	require.NoError(t, svc.Logout(context.Background()))
	require.NoError(t, svc.Logout(context.Background()))

	_, err := svc.Current(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
