// Package session owns the locally persisted authentication state:
// the bearer token, the user id, and a cached profile snapshot.
//
// All mutation goes through Store; other components read the session
// indirectly through the gateway and never touch storage directly.
package session

import "context"

// Repository is a durable key-value primitive over the local metadata table.
type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
