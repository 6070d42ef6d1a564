package services

import (
	"context"

	"github.com/dmitrijs2005/superapp/internal/client/client"
	"github.com/dmitrijs2005/superapp/internal/client/models"
	"github.com/dmitrijs2005/superapp/internal/client/session"
)

// ActivityService covers the feed, ride and governance calls used by the
// CLI. Tokens the backend reports as earned are credited to the session.
type ActivityService interface {
	Feed(ctx context.Context) ([]models.Post, error)
	Post(ctx context.Context, content, visibility string) (*models.CreatedPost, error)
	RequestRide(ctx context.Context, origin, destination models.Location) (*models.Ride, error)
	RideStatus(ctx context.Context, rideID string) (*models.RideStatus, error)
	Propose(ctx context.Context, title, description, proposalType string, votingDurationHours int64) (*models.Proposal, error)
	Proposals(ctx context.Context) ([]models.Proposal, error)
}

type activityService struct {
	client client.Client
	store  *session.Store
}

func NewActivityService(client client.Client, store *session.Store) ActivityService {
	return &activityService{client: client, store: store}
}

func (s *activityService) Feed(ctx context.Context) ([]models.Post, error) {
	return s.client.GetFeed(ctx)
}

// Post publishes content and credits tokens_earned. A failed balance write
// is returned together with the created post.
func (s *activityService) Post(ctx context.Context, content, visibility string) (*models.CreatedPost, error) {
	p, err := s.client.CreatePost(ctx, content, visibility)
	if err != nil {
		return nil, err
	}
	return p, creditTokens(ctx, s.store, p.TokensEarned)
}

func (s *activityService) RequestRide(ctx context.Context, origin, destination models.Location) (*models.Ride, error) {
	return s.client.RequestRide(ctx, origin, destination)
}

func (s *activityService) RideStatus(ctx context.Context, rideID string) (*models.RideStatus, error) {
	return s.client.GetRideStatus(ctx, rideID)
}

func (s *activityService) Propose(ctx context.Context, title, description, proposalType string, votingDurationHours int64) (*models.Proposal, error) {
	return s.client.CreateProposal(ctx, title, description, proposalType, votingDurationHours)
}

func (s *activityService) Proposals(ctx context.Context) ([]models.Proposal, error) {
	return s.client.GetProposals(ctx)
}
