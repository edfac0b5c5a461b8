// Package graphql implements the HTTP client for the external GraphQL data API.
package graphql

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
	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/common/metrics"
	"cravio-admin/internal/common/observability"
)

// Client posts GraphQL documents to the data API endpoint. It is safe for
// concurrent use.
type Client struct {
	endpoint    string
	adminSecret string
	httpClient  *http.Client
	log         logger.Logger
	obs         *observability.Observability
}

func NewClient(cfg config.HasuraConfig, log logger.Logger, obs *observability.Observability) *Client {
	return &Client{
		endpoint:    strings.TrimSuffix(cfg.Endpoint, "/"),
		adminSecret: cfg.AdminSecret,
		httpClient:  &http.Client{Timeout: time.Duration(cfg.RequestTimeout) * time.Second},
		log:         log.WithFields(map[string]interface{}{"component": "graphql"}),
		obs:         obs,
	}
}

type payload struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// Do executes one named operation. On success the response data object is
// unmarshalled into out (which may be nil for callers that only care about
// confirmation). Transport failures surface as NETWORK_FAILURE and API-level
// refusals as API_REJECTION.
func (c *Client) Do(ctx context.Context, operation, query string, variables map[string]interface{}, out interface{}) error {
	start := time.Now()
	err := c.do(ctx, operation, query, variables, out)
	c.record(ctx, operation, start, err)
	return err
}

func (c *Client) do(ctx context.Context, operation, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(payload{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.adminSecret != "" {
		req.Header.Set("x-hasura-admin-secret", c.adminSecret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewNetworkFailureError("data-api", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewNetworkFailureError("data-api", err)
	}

	if resp.StatusCode != http.StatusOK {
		return apperrors.NewAPIRejectionError(operation,
			fmt.Sprintf("status %d: %s", resp.StatusCode, string(raw)))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return apperrors.NewAPIRejectionError(operation,
			fmt.Sprintf("malformed response: %v", err))
	}

	if len(env.Errors) > 0 {
		msgs := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			msgs = append(msgs, e.Message)
		}
		return apperrors.NewAPIRejectionError(operation, strings.Join(msgs, "; "))
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return apperrors.NewAPIRejectionError(operation,
				fmt.Sprintf("unexpected response shape: %v", err))
		}
	}

	return nil
}

func (c *Client) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		c.log.Warn("data api operation failed", map[string]interface{}{
			"operation": operation,
			"error":     err.Error(),
		})
	}

	metrics.GraphQLRequests.WithLabelValues(operation, status).Inc()
	metrics.GraphQLDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if c.obs != nil {
		c.obs.RecordRequest(ctx, operation, status)
		c.obs.RecordDuration(ctx, operation, time.Since(start))
	}
}
