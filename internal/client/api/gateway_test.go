package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brainstorm-app/brainstorm/internal/client/session"
	"github.com/brainstorm-app/brainstorm/internal/logging"
)

// fakeSessions is an in-memory SessionStore.
type fakeSessions struct {
	mu   sync.Mutex
	sess *session.Session

	clearCalls int
	clearErr   error
}

func (f *fakeSessions) Current(ctx context.Context) (*session.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sess, nil
}

func (f *fakeSessions) Save(ctx context.Context, s session.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sess = &s
	return nil
}

func (f *fakeSessions) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearCalls++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.sess = nil
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestGateway(t *testing.T, url string, timeout time.Duration, sessions SessionStore) *Gateway {
	t.Helper()
	gw, err := NewGateway(url, timeout, sessions, testLogger())
	require.NoError(t, err)
	return gw
}

func TestNewGateway_RejectsBadURL(t *testing.T) {
	for _, u := range []string{"", "not a url", "/relative/only"} {
		_, err := NewGateway(u, 0, &fakeSessions{}, testLogger())
		require.Errorf(t, err, "url %q must be rejected", u)
	}
}

func TestGateway_AttachesBearerWhenLoggedIn(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	sessions := &fakeSessions{sess: &session.Session{Token: "tok-123", UserID: "u1"}}
	gw := newTestGateway(t, srv.URL, 0, sessions)

	_, err := gw.Do(context.Background(), RequestDescriptor{Method: http.MethodGet, Path: "/api/posts"})
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.NotEmpty(t, gotReqID, "every request must carry a request id")
}

func TestGateway_NoBearerWhenLoggedOut(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	gw := newTestGateway(t, srv.URL, 0, &fakeSessions{})

	_, err := gw.Do(context.Background(), RequestDescriptor{Method: http.MethodGet, Path: "/api/posts"})
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestGateway_SerializesBodyAndQuery(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}
	var gotBody payload
	var gotQuery, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	gw := newTestGateway(t, srv.URL, 0, &fakeSessions{})

	rd := RequestDescriptor{
		Method: http.MethodPost,
		Path:   "/api/posts/search",
		Query:  map[string][]string{"q": {"robot games"}},
		Body:   payload{Title: "hello"},
	}
	_, err := gw.Do(context.Background(), rd)
	require.NoError(t, err)
	require.Equal(t, "robot games", gotQuery)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, "hello", gotBody.Title)
}

func TestGateway_NonOKStatusIsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Email already in use"}`))
	}))
	t.Cleanup(srv.Close)

	gw := newTestGateway(t, srv.URL, 0, &fakeSessions{})

	_, err := gw.Do(context.Background(), RequestDescriptor{Method: http.MethodPost, Path: "/api/users/register"})
	require.Error(t, err)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, CategoryServer, te.Category)
	require.Equal(t, http.StatusConflict, te.Status)
	require.Contains(t, string(te.Body), "Email already in use")
}

func TestGateway_TimeoutCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	gw := newTestGateway(t, srv.URL, 30*time.Millisecond, &fakeSessions{})

	_, err := gw.Do(context.Background(), RequestDescriptor{Method: http.MethodGet, Path: "/api/stats"})
	require.Error(t, err)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, CategoryTimeout, te.Category)
	require.Zero(t, te.Status)
}

func TestGateway_NoResponseCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing is listening anymore

	gw := newTestGateway(t, url, 0, &fakeSessions{})

	_, err := gw.Do(context.Background(), RequestDescriptor{Method: http.MethodGet, Path: "/api/stats"})
	require.Error(t, err)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, CategoryNoResponse, te.Category)
	require.Nil(t, te.Body)
}

func TestGateway_401ClearsSessionOnAnyEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))
	t.Cleanup(srv.Close)

	sessions := &fakeSessions{sess: &session.Session{Token: "stale", UserID: "u1"}}
	gw := newTestGateway(t, srv.URL, 0, sessions)

	// An unrelated post update, not a login call.
	_, err := gw.Do(context.Background(), RequestDescriptor{Method: http.MethodPut, Path: "/api/posts/123"})
	require.Error(t, err)

	got, err2 := gw.StoredSession(context.Background())
	require.NoError(t, err2)
	require.Nil(t, got, "session must be cleared after any 401")
	require.Equal(t, 1, sessions.clearCalls)
}

func TestGateway_401StillReturnsErrorWhenClearFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	sessions := &fakeSessions{
		sess:     &session.Session{Token: "stale"},
		clearErr: errors.New("disk full"),
	}
	gw := newTestGateway(t, srv.URL, 0, sessions)

	_, err := gw.Do(context.Background(), RequestDescriptor{Method: http.MethodGet, Path: "/api/users/me"})

	var te *TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, http.StatusUnauthorized, te.Status)
}

func TestGateway_2xxReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"p1"}`))
	}))
	t.Cleanup(srv.Close)

	gw := newTestGateway(t, srv.URL, 0, &fakeSessions{})

	data, err := gw.Do(context.Background(), RequestDescriptor{Method: http.MethodPost, Path: "/api/posts/create"})
	require.NoError(t, err)
	require.JSONEq(t, `{"_id":"p1"}`, string(data))
}

func TestGateway_SessionDelegates(t *testing.T) {
	sessions := &fakeSessions{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)

	gw := newTestGateway(t, srv.URL, 0, sessions)
	ctx := context.Background()

	require.NoError(t, gw.SaveSession(ctx, session.Session{Token: "abc", UserID: "u1"}))

	got, err := gw.StoredSession(ctx)
	require.NoError(t, err)
	require.Equal(t, "abc", got.Token)

	require.NoError(t, gw.ClearSession(ctx))
	got, err = gw.StoredSession(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}
