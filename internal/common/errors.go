// Package common defines shared constants and sentinel errors used across
// the BrainStorm client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// ErrNotLoggedIn is returned by operations that require an
	// authenticated session when no session is stored.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNotFound marks a lookup that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrInternal is a generic internal-failure sentinel.
	ErrInternal = errors.New("internal error")
)
