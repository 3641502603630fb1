// Package validation holds the client-side form rules that run before any
// network call. The server enforces the same constraints; validating locally
// keeps obviously bad input off the wire and gives instant field feedback.
package validation

import (
	"regexp"
	"strings"

	"github.com/brainstorm-app/brainstorm/internal/client/models"
)

// FieldErrors maps a form field name to a display-ready message.
type FieldErrors map[string]string

// Valid reports whether no rule failed.
func (f FieldErrors) Valid() bool {
	return len(f) == 0
}

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const (
	usernameMinLen = 3
	usernameMaxLen = 20
	passwordMinLen = 6
	nameMinLen     = 2
)

func checkUsername(fe FieldErrors, username string) {
	switch {
	case username == "":
		fe["username"] = "Username is required"
	case len(username) < usernameMinLen:
		fe["username"] = "Username must be at least 3 characters"
	case len(username) > usernameMaxLen:
		fe["username"] = "Username must be at most 20 characters"
	case !usernameRe.MatchString(username):
		fe["username"] = "Username can only contain letters, numbers, and underscores"
	}
}

func checkEmail(fe FieldErrors, email string) {
	switch {
	case email == "":
		fe["email"] = "Email is required"
	case !emailRe.MatchString(email):
		fe["email"] = "Please enter a valid email address"
	}
}

func checkName(fe FieldErrors, name string) {
	switch {
	case strings.TrimSpace(name) == "":
		fe["name"] = "Full name is required"
	case len(strings.TrimSpace(name)) < nameMinLen:
		fe["name"] = "Name must be at least 2 characters"
	}
}

func checkPassword(fe FieldErrors, password, confirm string) {
	switch {
	case password == "":
		fe["password"] = "Password is required"
	case len(password) < passwordMinLen:
		fe["password"] = "Password must be at least 6 characters"
	}
	if confirm != password {
		fe["confirmPassword"] = "Passwords do not match"
	}
}

// ValidateRegistration checks a signup form. confirm is the repeated
// password entry; mismatches are reported on confirmPassword, the field
// the user has to fix.
func ValidateRegistration(req models.RegistrationRequest, confirm string) FieldErrors {
	fe := FieldErrors{}
	checkUsername(fe, req.Username)
	checkEmail(fe, req.Email)
	checkName(fe, req.Name)
	checkPassword(fe, req.Password, confirm)
	return fe
}

// ValidateLogin checks a login form. Only presence and email shape are
// enforced; password strength is a signup concern.
func ValidateLogin(req models.LoginRequest) FieldErrors {
	fe := FieldErrors{}
	checkEmail(fe, req.Email)
	if req.Password == "" {
		fe["password"] = "Password is required"
	}
	return fe
}

// ValidateProfileUpdate checks a profile edit form. An empty password means
// "leave unchanged" and skips the password rules entirely.
func ValidateProfileUpdate(upd models.ProfileUpdate, confirm string) FieldErrors {
	fe := FieldErrors{}
	checkUsername(fe, upd.Username)
	checkEmail(fe, upd.Email)
	checkName(fe, upd.Name)
	if upd.Password != "" || confirm != "" {
		checkPassword(fe, upd.Password, confirm)
	}
	return fe
}

// ValidatePostDraft checks a post create/edit form.
func ValidatePostDraft(d models.PostDraft) FieldErrors {
	fe := FieldErrors{}
	if strings.TrimSpace(d.Title) == "" {
		fe["title"] = "Title is required"
	}
	if strings.TrimSpace(d.Description) == "" {
		fe["description"] = "Description is required"
	}
	if !d.Category.Valid() {
		fe["category"] = "Please select a category"
	}
	if strings.TrimSpace(d.ContactInfo) == "" {
		fe["contactInfo"] = "Contact info is required"
	}
	return fe
}
