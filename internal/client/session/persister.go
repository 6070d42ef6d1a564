package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/superapp/internal/client/models"
	"github.com/dmitrijs2005/superapp/internal/client/repositories/metadata"
)

// Metadata keys used by MetadataPersister.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// Persister is the durable copy of the session.
type Persister interface {
	Save(ctx context.Context, token string, user models.User) error
	// SaveUser rewrites the profile and leaves the token untouched.
	SaveUser(ctx context.Context, user models.User) error
	Load(ctx context.Context) (token string, user *models.User, err error)
	Remove(ctx context.Context) error
	// Reset wipes everything the persister owns, including keys it no
	// longer recognises.
	Reset(ctx context.Context) error
}

// MetadataPersister stores the session in a metadata.Repository: the token
// as raw bytes and the user profile as JSON.
type MetadataPersister struct {
	repo metadata.Repository
}

func NewMetadataPersister(repo metadata.Repository) *MetadataPersister {
	return &MetadataPersister{repo: repo}
}

func (p *MetadataPersister) Save(ctx context.Context, token string, user models.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return p.repo.SetMany(ctx, map[string][]byte{
		TokenKey: []byte(token),
		UserKey:  b,
	})
}

func (p *MetadataPersister) SaveUser(ctx context.Context, user models.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return p.repo.Set(ctx, UserKey, b)
}

func (p *MetadataPersister) Load(ctx context.Context) (string, *models.User, error) {
	token, err := p.repo.Get(ctx, TokenKey)
	if err != nil {
		return "", nil, err
	}
	raw, err := p.repo.Get(ctx, UserKey)
	if err != nil {
		return "", nil, err
	}
	if raw == nil {
		return string(token), nil, nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return "", nil, fmt.Errorf("%w: decode user: %w", ErrCorruptSession, err)
	}
	return string(token), &user, nil
}

func (p *MetadataPersister) Remove(ctx context.Context) error {
	return p.repo.Delete(ctx, TokenKey, UserKey)
}

func (p *MetadataPersister) Reset(ctx context.Context) error {
	return p.repo.Clear(ctx)
}
