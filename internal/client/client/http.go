package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/superapp/internal/client/config"
	"github.com/dmitrijs2005/superapp/internal/client/models"
	"github.com/dmitrijs2005/superapp/internal/common"
	"github.com/dmitrijs2005/superapp/internal/logging"
)

// APIPrefix is appended to the configured origin for every call except the
// health check.
const APIPrefix = "/api/v1"

type HTTPClient struct {
	baseURL   string
	healthURL string
	http      *http.Client
}

type options struct {
	transport    http.RoundTripper
	invalidating []int
}

type Option func(*options)

// WithTransport replaces http.DefaultTransport underneath the auth layer.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// WithInvalidatingStatus adds response codes that tear the session down.
// 401 is always included.
func WithInvalidatingStatus(codes ...int) Option {
	return func(o *options) { o.invalidating = append(o.invalidating, codes...) }
}

// NewHTTPClient builds the gateway once per process. The base address is
// fixed here and never re-resolved.
func NewHTTPClient(cfg *config.Config, session Session, navigator Navigator, log logging.Logger, opts ...Option) *HTTPClient {
	o := options{
		transport:    http.DefaultTransport,
		invalidating: []int{http.StatusUnauthorized},
	}
	if cfg.InvalidateOnForbidden {
		o.invalidating = append(o.invalidating, http.StatusForbidden)
	}
	for _, opt := range opts {
		opt(&o)
	}

	invalidating := make(map[int]struct{}, len(o.invalidating))
	for _, code := range o.invalidating {
		invalidating[code] = struct{}{}
	}

	origin := strings.TrimRight(cfg.APIURL, "/")

	return &HTTPClient{
		baseURL:   origin + APIPrefix,
		healthURL: origin + "/health",
		http: &http.Client{
			Timeout: cfg.RequestTimeout,
			Transport: &authTransport{
				base:         o.transport,
				session:      session,
				navigator:    navigator,
				invalidating: invalidating,
				log:          log.With("component", "gateway"),
			},
		},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", common.ContentTypeJSON)
	req.Header.Set("Accept", common.ContentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: raw}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, method, req.URL.Path, err)
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, email, username, password string) (*models.AuthResponse, error) {
	req := models.RegisterRequest{Email: email, Username: username, Password: password}

	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}

	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetFeed(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/social/feed", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost publishes content. An empty visibility is sent as "public".
func (c *HTTPClient) CreatePost(ctx context.Context, content, visibility string) (*models.CreatedPost, error) {
	if visibility == "" {
		visibility = models.VisibilityPublic
	}
	req := models.CreatePostRequest{Content: content, Visibility: visibility}

	var resp models.CreatedPost
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/social/posts", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) RequestRide(ctx context.Context, origin, destination models.Location) (*models.Ride, error) {
	req := models.RideRequest{Origin: origin, Destination: destination}

	var resp models.Ride
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/rides/request", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetRideStatus(ctx context.Context, rideID string) (*models.RideStatus, error) {
	if rideID == "" {
		return nil, ErrEmptyRideID
	}

	var resp models.RideStatus
	endpoint := c.baseURL + "/rides/" + url.PathEscape(rideID) + "/status"
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CreateProposal(ctx context.Context, title, description, proposalType string, votingDurationHours int64) (*models.Proposal, error) {
	req := models.CreateProposalRequest{
		Title:               title,
		Description:         description,
		ProposalType:        proposalType,
		VotingDurationHours: votingDurationHours,
	}

	var resp models.Proposal
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/dao/proposals", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetProposals(ctx context.Context) ([]models.Proposal, error) {
	var proposals []models.Proposal
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/dao/proposals", nil, &proposals); err != nil {
		return nil, err
	}
	return proposals, nil
}

// HealthCheck calls /health on the origin, outside the /api/v1 prefix.
func (c *HTTPClient) HealthCheck(ctx context.Context) (*models.Health, error) {
	var resp models.Health
	if err := c.do(ctx, http.MethodGet, c.healthURL, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

var _ Client = (*HTTPClient)(nil)
