// Package services contains application services for the SuperApp client.
// This file defines the authentication service: register, login, logout,
// liveness probe and inspection of the current session.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/superapp/internal/client/client"
	"github.com/dmitrijs2005/superapp/internal/client/models"
	"github.com/dmitrijs2005/superapp/internal/client/session"
)

// ErrNotLoggedIn is returned by operations that need a session.
var ErrNotLoggedIn = errors.New("not logged in")

// Whoami describes the current session for display.
type Whoami struct {
	User      *models.User
	ExpiresAt time.Time
	HasExpiry bool
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register / Login: call the backend and store the returned session.
//   - Logout: drop the session locally.
//   - Ping: check server liveness.
//   - Whoami: describe the current session.
//   - CreditTokens: add earned tokens to the session balance.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) (*models.Health, error)
	Whoami() (*Whoami, error)
	CreditTokens(ctx context.Context, earned int64) error
}

type authService struct {
	client client.Client
	store  *session.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client client.Client, store *session.Store) AuthService {
	return &authService{client: client, store: store}
}

// Register creates the account and signs in with the returned token. When
// the backend answers with user_id only, the profile is assembled from the
// submitted fields.
func (a *authService) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	resp, err := a.client.Register(ctx, email, username, password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := resp.User
	if user == nil {
		user = &models.User{ID: resp.UserID, Email: email, Username: username}
	}
	if err := a.store.SetSession(ctx, *user, resp.Token); err != nil {
		return user, fmt.Errorf("register: %w", err)
	}
	return user, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	user := resp.User
	if user == nil {
		user = &models.User{ID: resp.UserID, Email: email}
	}
	if err := a.store.SetSession(ctx, *user, resp.Token); err != nil {
		return user, fmt.Errorf("login: %w", err)
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Logout(ctx)
}

// Ping proxies a liveness check to the backend.
func (a *authService) Ping(ctx context.Context) (*models.Health, error) {
	return a.client.HealthCheck(ctx)
}

func (a *authService) Whoami() (*Whoami, error) {
	st := a.store.Snapshot()
	if !st.IsAuthenticated() {
		return nil, ErrNotLoggedIn
	}

	w := &Whoami{User: st.User}
	w.ExpiresAt, w.HasExpiry = session.TokenExpiry(st.Token)
	return w, nil
}

func (a *authService) CreditTokens(ctx context.Context, earned int64) error {
	return creditTokens(ctx, a.store, earned)
}

// creditTokens adds earned to the current balance. Nothing happens when
// earned is zero or nobody is logged in.
func creditTokens(ctx context.Context, store *session.Store, earned int64) error {
	if earned == 0 {
		return nil
	}
	return store.AddBalance(ctx, earned)
}
