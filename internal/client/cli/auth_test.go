package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brainstorm-app/brainstorm/internal/client/models"
	"github.com/brainstorm-app/brainstorm/internal/client/services"
	"github.com/brainstorm-app/brainstorm/internal/client/session"
)

// stubInputs replaces the interactive input seams: text prompts are
// answered from the given queue in order, password prompts with pw.
func stubInputs(t *testing.T, answers []string, pw []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		v := answers[i]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		return append([]byte(nil), pw...), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuthSvc struct {
	registerRet *models.User
	registerErr error
	lastReg     models.RegistrationRequest
	lastConfirm string

	loginRet *models.User
	loginErr error
	lastReq  models.LoginRequest

	logoutErr    error
	logoutCalled bool

	currentRet *models.User
	currentErr error

	updateRet *models.User
	updateErr error

	route services.Route
	sess  *session.Session

	seenMarked bool
}

func (f *fakeAuthSvc) Register(_ context.Context, req models.RegistrationRequest, confirm string) (*models.User, error) {
	f.lastReg, f.lastConfirm = req, confirm
	return f.registerRet, f.registerErr
}
func (f *fakeAuthSvc) Login(_ context.Context, req models.LoginRequest) (*models.User, error) {
	f.lastReq = req
	return f.loginRet, f.loginErr
}
func (f *fakeAuthSvc) Logout(_ context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuthSvc) CurrentUser(_ context.Context) (*models.User, error) {
	return f.currentRet, f.currentErr
}
func (f *fakeAuthSvc) UpdateProfile(_ context.Context, _ models.ProfileUpdate, _ string) (*models.User, error) {
	return f.updateRet, f.updateErr
}
func (f *fakeAuthSvc) StartupRoute(_ context.Context) (services.Route, error) {
	return f.route, nil
}
func (f *fakeAuthSvc) MarkOnboardingSeen(_ context.Context) error {
	f.seenMarked = true
	return nil
}
func (f *fakeAuthSvc) StoredSession(_ context.Context) (*session.Session, error) {
	return f.sess, nil
}

func TestRegisterCommand_Success(t *testing.T) {
	muteOutput(t)
	stubInputs(t, []string{"ada_l", "ada@example.org", "Ada Lovelace"}, []byte("secret1"))

	f := &fakeAuthSvc{registerRet: &models.User{ID: "u1", Username: "ada_l", Name: "Ada Lovelace"}}
	a := &App{auth: f}

	require.NoError(t, a.Register(context.Background()))
	require.True(t, a.isLoggedIn())
	require.Equal(t, "ada_l", a.username)

	require.Equal(t, "ada_l", f.lastReg.Username)
	require.Equal(t, "ada@example.org", f.lastReg.Email)
	require.Equal(t, "secret1", f.lastReg.Password)
	require.Equal(t, "secret1", f.lastConfirm)
}

func TestRegisterCommand_FailureStaysLoggedOut(t *testing.T) {
	muteOutput(t)
	stubInputs(t, []string{"ada_l", "ada@example.org", "Ada"}, []byte("secret1"))

	f := &fakeAuthSvc{registerErr: errors.New("boom")}
	a := &App{auth: f}

	require.Error(t, a.Register(context.Background()))
	require.False(t, a.isLoggedIn())
}

func TestLoginCommand_Success(t *testing.T) {
	muteOutput(t)
	stubInputs(t, []string{"ada@example.org"}, []byte("secret1"))

	f := &fakeAuthSvc{loginRet: &models.User{ID: "u1", Username: "ada_l"}}
	a := &App{auth: f}

	require.NoError(t, a.Login(context.Background()))
	require.True(t, a.isLoggedIn())
	require.Equal(t, "ada@example.org", f.lastReq.Email)
	require.Equal(t, "secret1", f.lastReq.Password)
}

func TestLogoutCommand(t *testing.T) {
	muteOutput(t)

	f := &fakeAuthSvc{}
	a := &App{auth: f, loggedIn: true, username: "ada_l"}

	require.NoError(t, a.Logout(context.Background()))
	require.True(t, f.logoutCalled)
	require.False(t, a.isLoggedIn())
	require.Empty(t, a.username)
}

func TestLogoutCommand_ErrorKeepsState(t *testing.T) {
	muteOutput(t)

	f := &fakeAuthSvc{logoutErr: errors.New("locked")}
	a := &App{auth: f, loggedIn: true}

	require.Error(t, a.Logout(context.Background()))
	require.True(t, a.isLoggedIn())
}

func TestWhoamiCommand(t *testing.T) {
	lines := captureOutput(t)

	f := &fakeAuthSvc{currentRet: &models.User{Username: "ada_l", Email: "ada@example.org", Bio: "counting machines"}}
	a := &App{auth: f}

	require.NoError(t, a.Whoami(context.Background()))
	require.NotEmpty(t, *lines)
}

func TestSyncLoginState_DropsStaleLogin(t *testing.T) {
	f := &fakeAuthSvc{sess: nil}
	a := &App{auth: f, loggedIn: true, username: "ada_l"}

	a.syncLoginState(context.Background())

	require.False(t, a.isLoggedIn())
	require.Empty(t, a.username)
}

func TestSyncLoginState_RestoresFromSnapshot(t *testing.T) {
	f := &fakeAuthSvc{sess: &session.Session{
		Token: "tok",
		User:  &models.User{Username: "ada_l"},
	}}
	a := &App{auth: f}

	a.syncLoginState(context.Background())

	require.True(t, a.isLoggedIn())
	require.Equal(t, "ada_l", a.username)
}
