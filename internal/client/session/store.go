// Package session holds the authenticated identity of the client process.
//
// The Store is created once at startup, restored from durable storage, and
// handed explicitly to every component that needs the token. Each mutation
// applies a pure State transition and then writes the durable copy while
// still holding the lock, so memory and storage change together.
//
// When the durable write fails the in-memory transition stays applied and
// the error is returned wrapped in ErrPersistence: memory wins for the rest
// of the process lifetime.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/superapp/internal/client/models"
	"github.com/dmitrijs2005/superapp/internal/logging"
)

type Store struct {
	mu        sync.Mutex
	state     State
	persister Persister
	log       logging.Logger
}

func NewStore(persister Persister, log logging.Logger) *Store {
	return &Store{persister: persister, log: log}
}

// Restore loads the persisted session. A token without a profile (or the
// reverse) cannot satisfy the session invariant: it restores as logged out
// and the leftover half is removed from storage. Stored data that cannot be
// decoded is wiped.
func (s *Store) Restore(ctx context.Context) error {
	token, user, err := s.persister.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = s.state.Cleared()
		if errors.Is(err, ErrCorruptSession) {
			if rerr := s.persister.Reset(ctx); rerr != nil {
				return fmt.Errorf("%w: %w", ErrPersistence, errors.Join(err, rerr))
			}
		}
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if token == "" || user == nil {
		s.state = s.state.Cleared()
		if token == "" && user == nil {
			return nil
		}
		return s.clearLocked(ctx)
	}
	s.state = s.state.WithSession(*user, token)
	s.log.Debug(ctx, "session restored", "user_id", user.ID)
	return nil
}

// SetSession stores the identity and token returned by login or
// registration. The token format is not validated.
func (s *Store) SetSession(ctx context.Context, user models.User, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.state.WithSession(user, token)
	s.log.Info(ctx, "session established", "user_id", user.ID, "username", user.Username)

	if err := s.persister.Save(ctx, token, user); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// Logout clears the session. Calling it while logged out is a no-op with
// the same end state.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clearLocked(ctx)
}

func (s *Store) clearLocked(ctx context.Context) error {
	s.state = s.state.Cleared()
	if err := s.persister.Remove(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// InvalidateToken clears the session only if it still holds token and
// reports whether it did. Concurrent callers presenting the same stale
// token clear the session exactly once, and a token that was already
// replaced by a newer login leaves the new session alone.
func (s *Store) InvalidateToken(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Token != token {
		return false, nil
	}
	return true, s.clearLocked(ctx)
}

// InvalidateAnonymous handles a rejection of a request that carried no
// token. If the session still has no token, whatever durable copy is left
// over is removed and true is returned. A login that completed in the
// meantime is left alone.
func (s *Store) InvalidateAnonymous(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Token != "" {
		return false, nil
	}
	return true, s.clearLocked(ctx)
}

// UpdateBalance replaces the token balance of the current user. Without a
// user it does nothing and returns nil.
func (s *Store) UpdateBalance(ctx context.Context, balance int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setBalanceLocked(ctx, balance)
}

// AddBalance adds delta to the balance of the current user in one step.
// Without a user it does nothing and returns nil.
func (s *Store) AddBalance(ctx context.Context, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return nil
	}
	return s.setBalanceLocked(ctx, s.state.User.TokenBalance+delta)
}

func (s *Store) setBalanceLocked(ctx context.Context, balance int64) error {
	if s.state.User == nil {
		return nil
	}

	s.state = s.state.WithBalance(balance)
	if err := s.persister.SaveUser(ctx, *s.state.User); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// User returns a copy of the current identity, or nil.
func (s *Store) User() *models.User {
	return s.Snapshot().User
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsAuthenticated()
}

// Snapshot returns a detached copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}
