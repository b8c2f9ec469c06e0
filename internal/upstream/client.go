// Package upstream implements the retrying HTTP client for the user/posts
// API the gateway fronts. The upstream runs on serverless infrastructure and
// answers 5xx while warming up ("cold start"); the client absorbs a bounded
// number of those transparently and normalizes every other failure into a
// single *APIError shape.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/userportal/gateway/internal/api/metrics"
	"github.com/userportal/gateway/internal/core/domain"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 2
	defaultRetryDelay = 2 * time.Second
)

// Config captures the settings for the upstream connection.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// Client executes calls against the upstream API.
type Client struct {
	base       *url.URL
	http       *http.Client
	maxRetries int
	retryDelay time.Duration
	log        zerolog.Logger

	// OnUnauthorized runs whenever any call, not only login or register,
	// comes back 401 — before the normalized error is returned. The router
	// wires it to session invalidation.
	OnUnauthorized func(ctx context.Context)
}

// New builds a Client. Zero-valued knobs fall back to defaults; MaxRetries
// may be set to a negative value to disable retrying entirely.
func New(cfg Config, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("upstream: parse base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	} else if maxRetries < 0 {
		maxRetries = 0
	}
	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}

	return &Client{
		base:       base,
		http:       &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		log:        log,
	}, nil
}

// Ping checks plain reachability of the upstream root endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", http.MethodGet, "/", "", nil, nil)
}

// do runs one logical call. Attempts are strictly sequential: a retry only
// starts after the previous attempt and its full delay have completed. The
// delay timer is abandoned as soon as ctx is cancelled.
func (c *Client) do(ctx context.Context, endpoint, method, path, token string, body, out any) error {
	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return &APIError{Message: "invalid request payload", Cause: err}
		}
	}

	for attempt := 0; ; attempt++ {
		status, respBody, err := c.attempt(ctx, method, path, token, payload)
		if err != nil {
			// Transport-level failure: the upstream never answered, so this
			// is not a cold start. No retry.
			metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
			return &APIError{Message: "could not reach the upstream API", Cause: err}
		}

		if status >= http.StatusInternalServerError && attempt < c.maxRetries {
			metrics.UpstreamRetriesTotal.WithLabelValues(endpoint).Inc()
			c.log.Warn().
				Str("endpoint", endpoint).
				Int("status", status).
				Int("attempt", attempt+1).
				Int("max_retries", c.maxRetries).
				Dur("delay", c.retryDelay).
				Msg("cold start suspected, retrying")

			if err := c.wait(ctx); err != nil {
				metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
				return &APIError{Message: "could not reach the upstream API", Cause: err}
			}
			continue
		}

		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			if out != nil && len(respBody) > 0 {
				if err := json.Unmarshal(respBody, out); err != nil {
					metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
					return &APIError{Message: "invalid upstream response", Status: status, Cause: err}
				}
			}
			metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "success").Inc()
			return nil
		}

		if status == http.StatusUnauthorized {
			metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "unauthorized").Inc()
			if c.OnUnauthorized != nil {
				c.OnUnauthorized(ctx)
			}
			apiErr := normalize(status, respBody)
			apiErr.Cause = domain.ErrUnauthorized
			return apiErr
		}

		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return normalize(status, respBody)
	}
}

// attempt runs a single HTTP round trip and drains the body.
func (c *Client) attempt(ctx context.Context, method, path, token string, payload []byte) (int, []byte, error) {
	u := c.base.JoinPath(path)

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// wait sleeps for the retry delay on a cancellable timer.
func (c *Client) wait(ctx context.Context) error {
	timer := time.NewTimer(c.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// normalize converts a non-2xx response into an *APIError. Message priority:
// body `detail`, body `error`, body `message`, then a status-line summary.
func normalize(status int, body []byte) *APIError {
	var raw map[string]any
	_ = json.Unmarshal(body, &raw)

	msg := firstString(raw, "detail", "error", "message")
	if msg == "" {
		msg = fmt.Sprintf("error %d: %s", status, http.StatusText(status))
	}
	return &APIError{
		Message: msg,
		Status:  status,
		Cause:   fmt.Errorf("upstream responded %d", status),
	}
}

func firstString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
