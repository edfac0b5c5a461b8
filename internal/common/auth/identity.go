// Package auth talks to the external identity provider and manages admin
// sessions. Credentials are verified remotely; this service never stores
// passwords.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cravio-admin/internal/common/config"
	apperrors "cravio-admin/internal/common/errors"
)

// IdentityClient signs in against the provider's REST endpoint.
type IdentityClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// VerifiedUser is the provider's view of an authenticated account.
type VerifiedUser struct {
	UserID  string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
}

func NewIdentityClient(cfg config.IdentityConfig) *IdentityClient {
	return &IdentityClient{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: time.Duration(cfg.RequestTimeout) * time.Second},
	}
}

// SignIn verifies an email/password pair. Rejected credentials come back as a
// generic AUTH_FAILURE; the provider's own reason stays in Details for logs.
func (c *IdentityClient) SignIn(ctx context.Context, email, password string) (*VerifiedUser, error) {
	body, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal sign-in request: %w", err)
	}

	signInURL := fmt.Sprintf("%s/v1/accounts:signInWithPassword?key=%s", c.baseURL, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, signInURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewNetworkFailureError("identity-provider", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewNetworkFailureError("identity-provider", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewAuthFailureError(
			fmt.Sprintf("provider status %d: %s", resp.StatusCode, string(raw)))
	}

	var user VerifiedUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, apperrors.NewAuthFailureError(fmt.Sprintf("malformed provider response: %v", err))
	}
	if user.IDToken == "" {
		return nil, apperrors.NewAuthFailureError("provider returned no token")
	}

	return &user, nil
}
