package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/superapp/internal/client/models"
	"github.com/dmitrijs2005/superapp/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/superapp/internal/client/session"
	"github.com/dmitrijs2005/superapp/internal/logging"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	RegisterResp *models.AuthResponse
	RegisterErr  error
	LoginResp    *models.AuthResponse
	LoginErr     error
	FeedResp     []models.Post
	FeedErr      error
	PostResp     *models.CreatedPost
	PostErr      error
	RideResp     *models.Ride
	RideErr      error
	StatusResp   *models.RideStatus
	StatusErr    error
	ProposalResp *models.Proposal
	ProposalErr  error
	ListResp     []models.Proposal
	ListErr      error
	HealthResp   *models.Health
	HealthErr    error

	LastEmail      string
	LastUsername   string
	LastPassword   string
	LastVisibility string
	LastRideID     string
	LastOrigin     models.Location
	LastDuration   int64
}

func (f *fakeClient) Register(_ context.Context, email, username, password string) (*models.AuthResponse, error) {
	f.LastEmail, f.LastUsername, f.LastPassword = email, username, password
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*models.AuthResponse, error) {
	f.LastEmail, f.LastPassword = email, password
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) GetFeed(context.Context) ([]models.Post, error) { return f.FeedResp, f.FeedErr }

func (f *fakeClient) CreatePost(_ context.Context, _ string, visibility string) (*models.CreatedPost, error) {
	f.LastVisibility = visibility
	return f.PostResp, f.PostErr
}

func (f *fakeClient) RequestRide(_ context.Context, origin, _ models.Location) (*models.Ride, error) {
	f.LastOrigin = origin
	return f.RideResp, f.RideErr
}

func (f *fakeClient) GetRideStatus(_ context.Context, rideID string) (*models.RideStatus, error) {
	f.LastRideID = rideID
	return f.StatusResp, f.StatusErr
}

func (f *fakeClient) CreateProposal(_ context.Context, _, _, _ string, hours int64) (*models.Proposal, error) {
	f.LastDuration = hours
	return f.ProposalResp, f.ProposalErr
}

func (f *fakeClient) GetProposals(context.Context) ([]models.Proposal, error) {
	return f.ListResp, f.ListErr
}

func (f *fakeClient) HealthCheck(context.Context) (*models.Health, error) {
	return f.HealthResp, f.HealthErr
}

func newMemoryStore(t *testing.T) (*session.Store, *metadata.MemoryRepository) {
	t.Helper()
	repo := metadata.NewMemoryRepository()
	return session.NewStore(session.NewMetadataPersister(repo), logging.Nop()), repo
}
