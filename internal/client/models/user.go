// Package models defines client-side data models exchanged with the
// BrainStorm API.
package models

import "time"

// User is the profile record as returned by /api/users endpoints.
type User struct {
	// ID is the server-assigned user identifier.
	ID string `json:"_id"`

	// Username is the unique public handle (3-20 chars, [A-Za-z0-9_]).
	Username string `json:"username"`

	// Email is the login identity.
	Email string `json:"email"`

	// Name is the user's display name.
	Name string `json:"name"`

	Bio       string   `json:"bio,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	Interests []string `json:"interests,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// RegistrationRequest is the payload for POST /api/users/register.
// Password is write-only and never echoed back by the server.
type RegistrationRequest struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Name      string   `json:"name"`
	Bio       string   `json:"bio,omitempty"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}

// LoginRequest is the payload for POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate is the payload for PUT /api/users/me. Password is optional:
// an empty value means "leave unchanged" and is omitted from the JSON body.
type ProfileUpdate struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	Bio       string   `json:"bio"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Password  string   `json:"password,omitempty"`
}
