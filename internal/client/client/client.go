package client

import (
	"context"

	"github.com/dmitrijs2005/superapp/internal/client/models"
)

// Client is one typed call per backend operation.
type Client interface {
	Register(ctx context.Context, email, username, password string) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetFeed(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, content, visibility string) (*models.CreatedPost, error)
	RequestRide(ctx context.Context, origin, destination models.Location) (*models.Ride, error)
	GetRideStatus(ctx context.Context, rideID string) (*models.RideStatus, error)
	CreateProposal(ctx context.Context, title, description, proposalType string, votingDurationHours int64) (*models.Proposal, error)
	GetProposals(ctx context.Context) ([]models.Proposal, error)
	HealthCheck(ctx context.Context) (*models.Health, error)
}

// Session is the part of the session store the transport needs.
// *session.Store satisfies it.
type Session interface {
	Token() string
	InvalidateToken(ctx context.Context, token string) (bool, error)
	InvalidateAnonymous(ctx context.Context) (bool, error)
}

// Navigator moves the user to the login surface. The transport calls it
// after a 401, or a 403 when that status is configured as invalidating. It
// must not issue requests through the same client and should tolerate being
// called again while a navigation is already pending.
type Navigator interface {
	NavigateToLogin(ctx context.Context)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context)

func (f NavigatorFunc) NavigateToLogin(ctx context.Context) { f(ctx) }
