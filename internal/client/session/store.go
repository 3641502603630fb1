package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/brainstorm-app/brainstorm/internal/dbx"
)

// Storage keys for session fields. keyOnboarding is deliberately not a
// session field: the first-run marker must survive logout.
const (
	keyToken      = "token"
	keyUserID     = "userId"
	keyUser       = "userData"
	keyOnboarding = "hasSeenOnboarding"
)

// Store is the single authoritative owner of persisted session state.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo(db dbx.DBTX) Repository {
	return NewSQLiteRepository(db)
}

// Save persists the session, overwriting any prior one. The three fields
// are written in a single transaction so a crash can not leave a token
// without its user id. When sess.UserID is empty, the token's unverified
// subject claim is used as a fallback.
func (s *Store) Save(ctx context.Context, sess Session) error {
	if sess.Token == "" {
		return fmt.Errorf("refusing to save session without token")
	}

	if sess.UserID == "" {
		sess.UserID, _ = tokenClaims(sess.Token)
	}

	var userBlob []byte
	if sess.User != nil {
		b, err := json.Marshal(sess.User)
		if err != nil {
			return fmt.Errorf("failed to serialize user snapshot: %w", err)
		}
		userBlob = b
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, keyToken, []byte(sess.Token)); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyUserID, []byte(sess.UserID)); err != nil {
			return err
		}
		if userBlob != nil {
			return repo.Set(ctx, keyUser, userBlob)
		}
		return repo.Delete(ctx, keyUser)
	})
}

// Current reads back the persisted session. Returns (nil, nil) when no
// session is stored, i.e. the user is logged out.
func (s *Store) Current(ctx context.Context) (*Session, error) {
	repo := s.repo(s.db)

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return nil, nil
	}

	sess := &Session{Token: string(token)}
	_, sess.ExpiresAt = tokenClaims(sess.Token)

	userID, err := repo.Get(ctx, keyUserID)
	if err != nil {
		return nil, err
	}
	sess.UserID = string(userID)

	userBlob, err := repo.Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}
	if len(userBlob) > 0 {
		// A corrupt snapshot is not fatal: the token is what matters.
		if err := json.Unmarshal(userBlob, &sess.User); err != nil {
			sess.User = nil
		}
	}

	return sess, nil
}

// Clear removes all session fields. Calling it on an already empty store
// is a no-op, so logout is idempotent.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		for _, key := range []string{keyToken, keyUserID, keyUser} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// MarkOnboardingSeen records that the first-run walkthrough was shown.
// The marker survives Clear so a returning user is routed to login,
// not back to onboarding.
func (s *Store) MarkOnboardingSeen(ctx context.Context) error {
	return s.repo(s.db).Set(ctx, keyOnboarding, []byte("true"))
}

// OnboardingSeen reports whether the first-run walkthrough was ever shown.
func (s *Store) OnboardingSeen(ctx context.Context) (bool, error) {
	v, err := s.repo(s.db).Get(ctx, keyOnboarding)
	if err != nil {
		return false, err
	}
	return string(v) == "true", nil
}
