package auth

import (
	"context"
	"encoding/json"
	"time"

	"cravio-admin/internal/common/database"
	apperrors "cravio-admin/internal/common/errors"
	"cravio-admin/internal/common/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// Session is an opaque-token admin session. The token is what clients carry;
// the provider's id token never leaves the server.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionManager owns the session lifecycle: login, lookup, logout.
type SessionManager struct {
	identity *IdentityClient
	store    *database.RedisClient
	ttl      time.Duration
	log      logger.Logger
}

func NewSessionManager(identity *IdentityClient, store *database.RedisClient, ttl time.Duration, log logger.Logger) *SessionManager {
	return &SessionManager{
		identity: identity,
		store:    store,
		ttl:      ttl,
		log:      log.WithFields(map[string]interface{}{"component": "session"}),
	}
}

// Login verifies credentials with the identity provider and, on success,
// issues a fresh session token.
func (m *SessionManager) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := m.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &Session{
		Token:     uuid.NewString(),
		UserID:    user.UserID,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err := m.store.Set(ctx, sessionKeyPrefix+session.Token, raw, m.ttl); err != nil {
		return nil, apperrors.NewNetworkFailureError("session-store", err)
	}

	m.log.Info("session issued", map[string]interface{}{"userId": user.UserID})
	return session, nil
}

// Current resolves a token to its session, or SESSION_NOT_FOUND.
func (m *SessionManager) Current(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, apperrors.NewSessionNotFoundError("empty token")
	}

	raw, err := m.store.Get(ctx, sessionKeyPrefix+token)
	if err == redis.Nil {
		return nil, apperrors.NewSessionNotFoundError("unknown or expired token")
	}
	if err != nil {
		return nil, apperrors.NewNetworkFailureError("session-store", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, apperrors.NewSessionNotFoundError("corrupt session record")
	}
	return &session, nil
}

// Logout clears the session. Unknown tokens are a no-op.
func (m *SessionManager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.Del(ctx, sessionKeyPrefix+token); err != nil {
		return apperrors.NewNetworkFailureError("session-store", err)
	}
	return nil
}
