// Package services contains the application services behind the BrainStorm
// CLI. This file defines the authentication service: registration, login,
// logout, profile management, and startup routing from persisted state.
package services

import (
	"context"
	"fmt"

	"github.com/brainstorm-app/brainstorm/internal/client/api"
	"github.com/brainstorm-app/brainstorm/internal/client/models"
	"github.com/brainstorm-app/brainstorm/internal/client/session"
	"github.com/brainstorm-app/brainstorm/internal/client/validation"
)

// Sessions is the persisted-session surface the services need. The real
// implementation is session.Store; tests provide fakes.
type Sessions interface {
	Save(ctx context.Context, sess session.Session) error
	Current(ctx context.Context) (*session.Session, error)
	Clear(ctx context.Context) error
	MarkOnboardingSeen(ctx context.Context) error
	OnboardingSeen(ctx context.Context) (bool, error)
}

// FormError reports client-side validation failures. No request was made;
// the caller shows the field messages and nothing else.
type FormError struct {
	Fields validation.FieldErrors
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form validation failed (%d fields)", len(e.Fields))
}

// Route is the screen the app should open on startup.
type Route string

const (
	RouteDashboard  Route = "dashboard"
	RouteLogin      Route = "login"
	RouteOnboarding Route = "onboarding"
)

// AuthService defines account and session operations for the CLI.
//
// Contract:
//   - Register: validate the form, create the account, persist the session.
//   - Login: validate the form, authenticate, persist the session.
//   - Logout: drop the persisted session; the onboarding marker survives.
//   - CurrentUser: fetch the profile from the server and refresh the
//     cached snapshot.
//   - UpdateProfile: validate and push profile changes; empty password
//     means unchanged.
//   - StartupRoute: decide the opening screen from persisted state alone,
//     without touching the network.
//
// All methods honor context cancellation.
type AuthService interface {
	Register(ctx context.Context, req models.RegistrationRequest, confirm string) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate, confirm string) (*models.User, error)
	StartupRoute(ctx context.Context) (Route, error)
	MarkOnboardingSeen(ctx context.Context) error
	StoredSession(ctx context.Context) (*session.Session, error)
}

type authService struct {
	client   api.Client
	sessions Sessions
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, sessions Sessions) AuthService {
	return &authService{client: client, sessions: sessions}
}

func (a *authService) Register(ctx context.Context, req models.RegistrationRequest, confirm string) (*models.User, error) {
	if fe := validation.ValidateRegistration(req, confirm); !fe.Valid() {
		return nil, &FormError{Fields: fe}
	}

	res, err := a.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return a.saveAuth(ctx, res)
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	if fe := validation.ValidateLogin(req); !fe.Valid() {
		return nil, &FormError{Fields: fe}
	}

	res, err := a.client.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return a.saveAuth(ctx, res)
}

// saveAuth persists the credential and profile snapshot from a successful
// auth call. A registration that succeeded but could not be stored is
// surfaced as an error: without a persisted token every later call would
// run unauthenticated.
func (a *authService) saveAuth(ctx context.Context, res *api.AuthResult) (*models.User, error) {
	user := res.User
	sess := session.Session{Token: res.Token, UserID: user.ID, User: &user}
	if err := a.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

// CurrentUser fetches the profile from the server. The cached snapshot is
// refreshed best-effort: a storage failure does not discard a successful
// fetch.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	user, err := a.client.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	a.refreshSnapshot(ctx, user)
	return user, nil
}

func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate, confirm string) (*models.User, error) {
	if fe := validation.ValidateProfileUpdate(upd, confirm); !fe.Valid() {
		return nil, &FormError{Fields: fe}
	}

	user, err := a.client.UpdateUser(ctx, upd)
	if err != nil {
		return nil, err
	}
	a.refreshSnapshot(ctx, user)
	return user, nil
}

func (a *authService) refreshSnapshot(ctx context.Context, user *models.User) {
	sess, err := a.sessions.Current(ctx)
	if err != nil || !sess.LoggedIn() {
		return
	}
	sess.User = user
	if user.ID != "" {
		sess.UserID = user.ID
	}
	_ = a.sessions.Save(ctx, *sess)
}

// StartupRoute mirrors the app's splash logic: a stored token opens the
// dashboard, a seen onboarding marker opens login, a first run opens
// onboarding.
func (a *authService) StartupRoute(ctx context.Context) (Route, error) {
	sess, err := a.sessions.Current(ctx)
	if err != nil {
		return "", err
	}
	if sess.LoggedIn() {
		return RouteDashboard, nil
	}

	seen, err := a.sessions.OnboardingSeen(ctx)
	if err != nil {
		return "", err
	}
	if seen {
		return RouteLogin, nil
	}
	return RouteOnboarding, nil
}

func (a *authService) MarkOnboardingSeen(ctx context.Context) error {
	return a.sessions.MarkOnboardingSeen(ctx)
}

func (a *authService) StoredSession(ctx context.Context) (*session.Session, error) {
	return a.sessions.Current(ctx)
}
