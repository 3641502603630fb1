package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/brainstorm-app/brainstorm/internal/client/models"
)

// Session is the authenticated identity of the current user on this device.
// Token absent means logged out; every authenticated call requires it.
type Session struct {
	// Token is the opaque bearer credential issued at login/registration.
	Token string

	// UserID identifies the session owner.
	UserID string

	// User is an optional denormalized profile snapshot, refreshed on
	// login and on successful /api/users/me calls.
	User *models.User

	// ExpiresAt is the token's exp claim when one is present; zero otherwise.
	// Informational only: expiry is enforced by the server, not locally.
	ExpiresAt time.Time
}

// LoggedIn reports whether the session carries a credential.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Token != ""
}

// tokenClaims extracts the subject and expiry from a bearer token without
// verifying the signature. The token is server-issued and opaque to the
// client; claims are used only as a fallback user id and for display.
func tokenClaims(token string) (userID string, expiresAt time.Time) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", time.Time{}
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		userID = sub
	} else if id, ok := claims["id"].(string); ok {
		userID = id
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}
	return userID, expiresAt
}
