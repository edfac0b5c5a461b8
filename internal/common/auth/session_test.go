package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cravio-admin/internal/common/config"
	"cravio-admin/internal/common/database"
	apperrors "cravio-admin/internal/common/errors"
	"cravio-admin/internal/common/logger"
)

func newTestSessionManager(t *testing.T, identityStatus int, identityBody string) (*SessionManager, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	idp := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(identityStatus)
		w.Write([]byte(identityBody))
	}))
	t.Cleanup(idp.Close)

	identity := NewIdentityClient(config.IdentityConfig{
		BaseURL:        idp.URL,
		APIKey:         "test-key",
		RequestTimeout: 5,
	})
	return NewSessionManager(identity, store, time.Hour, logger.NewTestLogger(t)), mr
}

func TestLoginIssuesSession(t *testing.T) {
	m, _ := newTestSessionManager(t, http.StatusOK,
		`{"localId":"u1","email":"admin@cravio.in","idToken":"tok"}`)

	session, err := m.Login(context.Background(), "admin@cravio.in", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, "admin@cravio.in", session.Email)

	resolved, err := m.Current(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, resolved.UserID)
}

func TestLoginBadCredentials(t *testing.T) {
	m, _ := newTestSessionManager(t, http.StatusBadRequest,
		`{"error":{"message":"INVALID_PASSWORD"}}`)

	_, err := m.Login(context.Background(), "admin@cravio.in", "wrong")
	require.Error(t, err)

	stderr, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeAuthFailure, stderr.Code)
	// The client-facing message never echoes provider detail.
	assert.Equal(t, "Invalid email or password", stderr.Message)
}

func TestCurrentUnknownToken(t *testing.T) {
	m, _ := newTestSessionManager(t, http.StatusOK, `{}`)

	_, err := m.Current(context.Background(), "no-such-token")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionNotFound))
}

func TestSessionExpiry(t *testing.T) {
	m, mr := newTestSessionManager(t, http.StatusOK,
		`{"localId":"u1","email":"admin@cravio.in","idToken":"tok"}`)

	session, err := m.Login(context.Background(), "admin@cravio.in", "secret")
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)
	_, err = m.Current(context.Background(), session.Token)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionNotFound))
}

func TestLogout(t *testing.T) {
	m, _ := newTestSessionManager(t, http.StatusOK,
		`{"localId":"u1","email":"admin@cravio.in","idToken":"tok"}`)

	session, err := m.Login(context.Background(), "admin@cravio.in", "secret")
	require.NoError(t, err)

	require.NoError(t, m.Logout(context.Background(), session.Token))
	_, err = m.Current(context.Background(), session.Token)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeSessionNotFound))

	// A second logout of the same token is a no-op.
	require.NoError(t, m.Logout(context.Background(), session.Token))
}
