// Package crm is the gateway to the Salesforce org that acts as system of
// record for users, events, and attendees. It owns the service-level
// session (obtained once at startup, re-authenticated under a guard when
// Salesforce reports it invalid) and the translation between the CRM's
// custom REST envelope and domain types.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gatherly/events-api/internal/api/metrics"
	"github.com/gatherly/events-api/internal/core/domain"
)

const (
	apexBasePath   = "/services/apexrest"
	defaultTimeout = 15 * time.Second

	// actingUserHeader carries the verified caller id so the CRM side can
	// run its own ownership checks. It is always populated from token
	// claims, never from client input.
	actingUserHeader  = "X-Acting-User-Id"
	correlationHeader = "X-Correlation-Id"
)

// Config captures the credentials for the OAuth username-password flow.
type Config struct {
	LoginURL     string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	Timeout      time.Duration
}

type session struct {
	instanceURL string
	accessToken string
}

// Client talks to the Salesforce org. Safe for concurrent use; the session
// is the only mutable state and is guarded by mu.
type Client struct {
	httpClient *http.Client
	cfg        Config
	log        zerolog.Logger

	mu   sync.RWMutex
	sess session
}

// Connect authenticates against the login URL and returns a ready client.
// Startup fails fast when the credentials are rejected.
func Connect(ctx context.Context, cfg Config, log zerolog.Logger) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
		log:        log,
	}
	if err := c.login(ctx); err != nil {
		return nil, fmt.Errorf("crm connect: %w", err)
	}
	return c, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	InstanceURL string `json:"instance_url"`
}

// login runs the OAuth username-password flow and installs the session.
func (c *Client) login(ctx context.Context) error {
	form := url.Values{
		"grant_type":    {"password"},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"username":      {c.cfg.Username},
		"password":      {c.cfg.Password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.cfg.LoginURL, "/")+"/services/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read login response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &domain.UpstreamError{Status: resp.StatusCode, Message: "authentication failed: " + strings.TrimSpace(string(body))}
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if tok.AccessToken == "" || tok.InstanceURL == "" {
		return &domain.UpstreamError{Message: "login response missing token or instance URL"}
	}

	c.mu.Lock()
	c.sess = session{instanceURL: tok.InstanceURL, accessToken: tok.AccessToken}
	c.mu.Unlock()

	c.log.Info().Str("instance_url", tok.InstanceURL).Msg("crm session established")
	return nil
}

func (c *Client) snapshot() session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sess
}

// SessionActive reports whether a session has been established. Used by
// the readiness probe.
func (c *Client) SessionActive() bool {
	s := c.snapshot()
	return s.accessToken != "" && s.instanceURL != ""
}

// refresh re-authenticates unless another request already replaced the
// stale session while this one was waiting on the lock.
func (c *Client) refresh(ctx context.Context, stale session) error {
	c.mu.RLock()
	current := c.sess
	c.mu.RUnlock()
	if current.accessToken != stale.accessToken {
		return nil
	}

	c.log.Warn().Msg("crm session expired, re-authenticating")
	return c.login(ctx)
}

// do performs one Apex REST call and returns the envelope's data payload.
// The expected envelope statusCode is operation-specific (200 or 201);
// anything else surfaces the envelope message as an UpstreamError. An
// invalid session triggers a single guarded re-login and retry.
func (c *Client) do(ctx context.Context, method, path, actorID string, body any, expect int) (json.RawMessage, error) {
	sess := c.snapshot()

	raw, status, err := c.send(ctx, sess, method, path, actorID, body)
	if err == nil && status == http.StatusUnauthorized {
		if err := c.refresh(ctx, sess); err != nil {
			return nil, err
		}
		raw, status, err = c.send(ctx, c.snapshot(), method, path, actorID, body)
	}
	if err != nil {
		c.observe(method, path, "transport_error")
		return nil, err
	}
	if status == http.StatusUnauthorized {
		c.observe(method, path, "unauthorized")
		return nil, &domain.UpstreamError{Status: status, Message: "crm rejected the service session"}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.observe(method, path, "bad_envelope")
		return nil, &domain.UpstreamError{Status: status, Message: "malformed response envelope"}
	}
	if env.StatusCode != expect {
		c.observe(method, path, "failure")
		return nil, &domain.UpstreamError{Status: env.StatusCode, Message: env.Message}
	}

	c.observe(method, path, "success")
	return env.Data, nil
}

func (c *Client) send(ctx context.Context, sess session, method, path, actorID string, body any) (json.RawMessage, int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, sess.instanceURL+apexBasePath+path, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+sess.accessToken)
	req.Header.Set(correlationHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actorID != "" {
		req.Header.Set(actingUserHeader, actorID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("crm %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	metrics.CRMRequestDuration.WithLabelValues(resourceLabel(path)).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("crm %s %s: read body: %w", method, path, err)
	}
	return raw, resp.StatusCode, nil
}

func (c *Client) observe(method, path, outcome string) {
	metrics.CRMRequestsTotal.WithLabelValues(resourceLabel(path), method, outcome).Inc()
}

// resourceLabel reduces a request path to its leading resource segment so
// metric cardinality stays bounded.
func resourceLabel(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(trimmed, "/?"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return trimmed
}
