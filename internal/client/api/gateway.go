// Package api implements the session-aware request gateway for the
// BrainStorm REST API and the typed client built on top of it.
//
// The gateway owns two cross-cutting policies so individual features never
// re-implement them: attaching the stored bearer credential to every call,
// and clearing the stored session whenever any call comes back with 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/brainstorm-app/brainstorm/internal/client/session"
	"github.com/brainstorm-app/brainstorm/internal/logging"
)

// DefaultTimeout bounds every outbound call unless the gateway is
// configured otherwise.
const DefaultTimeout = 10 * time.Second

// SessionStore is the persisted-session surface the gateway depends on.
// *session.Store satisfies it.
type SessionStore interface {
	Current(ctx context.Context) (*session.Session, error)
	Save(ctx context.Context, sess session.Session) error
	Clear(ctx context.Context) error
}

// Gateway performs outbound calls against a fixed base URL. It is safe for
// concurrent use; independent calls share nothing but the session store.
type Gateway struct {
	baseURL  string
	timeout  time.Duration
	http     *http.Client
	sessions SessionStore
	log      logging.Logger
}

// NewGateway validates baseURL and returns a gateway bound to the given
// session store. A timeout of zero selects DefaultTimeout.
func NewGateway(baseURL string, timeout time.Duration, sessions SessionStore, log logging.Logger) (*Gateway, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{
		baseURL:  u.Scheme + "://" + u.Host,
		timeout:  timeout,
		http:     &http.Client{},
		sessions: sessions,
		log:      log,
	}, nil
}

// Do issues the described request and returns the raw response body on any
// 2xx status. Failures come back as *TransportError. Transport failures and
// timeouts are never retried; retrying is the caller's decision.
//
// On a 401 response the stored session is cleared before the error is
// returned, regardless of which endpoint was called.
func (g *Gateway) Do(ctx context.Context, rd RequestDescriptor) ([]byte, error) {
	endpoint := g.baseURL + rd.Path
	if len(rd.Query) > 0 {
		endpoint += "?" + rd.Query.Encode()
	}

	var body io.Reader
	if rd.Body != nil {
		b, err := json.Marshal(rd.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, rd.Method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if rd.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	sess, err := g.sessions.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored session: %w", err)
	}
	if sess.LoggedIn() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		cat := CategoryNoResponse
		var ne net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
			cat = CategoryTimeout
		}
		g.log.Warn(ctx, "request failed", "method", rd.Method, "path", rd.Path, "category", string(cat))
		return nil, &TransportError{Category: cat, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Category: CategoryNoResponse, Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		g.log.Debug(ctx, "request finished", "method", rd.Method, "path", rd.Path, "status", resp.StatusCode)
		return data, nil
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Forced-logout policy: an expired or revoked credential invalidates
		// the whole session, no matter which endpoint exposed it.
		if err := g.sessions.Clear(ctx); err != nil {
			g.log.Error(ctx, "failed to clear session after 401", "error", err)
		} else {
			g.log.Info(ctx, "session cleared after authentication failure", "path", rd.Path)
		}
	}

	g.log.Warn(ctx, "request rejected", "method", rd.Method, "path", rd.Path, "status", resp.StatusCode)
	return nil, &TransportError{Category: CategoryServer, Status: resp.StatusCode, Body: data}
}

// SaveSession persists a new session, replacing any prior one.
func (g *Gateway) SaveSession(ctx context.Context, sess session.Session) error {
	return g.sessions.Save(ctx, sess)
}

// ClearSession removes all persisted session state. Idempotent.
func (g *Gateway) ClearSession(ctx context.Context) error {
	return g.sessions.Clear(ctx)
}

// StoredSession reads back the persisted session; nil means logged out.
func (g *Gateway) StoredSession(ctx context.Context) (*session.Session, error) {
	return g.sessions.Current(ctx)
}
