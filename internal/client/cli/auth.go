package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/brainstorm-app/brainstorm/internal/client/models"
	"github.com/brainstorm-app/brainstorm/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register walks the user through the signup form and creates an account.
// On success the session is persisted and the user is logged in. Validation
// and server failures are rendered field by field.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Choose a password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	req := models.RegistrationRequest{
		Username: username,
		Email:    email,
		Name:     name,
		Password: string(password),
	}

	user, err := a.auth.Register(ctx, req, string(confirm))
	if err != nil {
		reportError(err)
		return err
	}

	a.loggedIn = true
	a.username = user.Username
	printlnFn(fmt.Sprintf("Welcome, %s!", user.Name))
	return nil
}

// Login prompts for credentials and authenticates. On success the session
// is persisted for the next start.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, models.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		reportError(err)
		return err
	}

	a.loggedIn = true
	a.username = user.Username
	printlnFn(fmt.Sprintf("Logged in as %s.", user.Username))
	return nil
}

// Logout drops the persisted session. The onboarding marker survives, so
// the next start goes straight to the login prompt.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		reportError(err)
		return err
	}
	a.loggedIn = false
	a.username = ""
	printlnFn("Logged out.")
	return nil
}

// Whoami fetches the current profile from the server and prints it.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		reportError(err)
		a.syncLoginState(ctx)
		return err
	}

	printlnFn(fmt.Sprintf("%s <%s>", user.Username, user.Email))
	if user.Name != "" {
		printlnFn("  name: " + user.Name)
	}
	if user.Bio != "" {
		printlnFn("  bio: " + user.Bio)
	}
	if len(user.Skills) > 0 {
		printlnFn(fmt.Sprintf("  skills: %v", user.Skills))
	}
	if len(user.Interests) > 0 {
		printlnFn(fmt.Sprintf("  interests: %v", user.Interests))
	}
	return nil
}
