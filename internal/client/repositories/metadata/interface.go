// Package metadata implements the client's durable key/value storage. The
// session persister keeps the bearer token and the user profile here.
//
// Backends: SQLite (default, file on disk), Redis (shared between processes)
// and an in-memory map. Get returns (nil, nil) for a missing key in every
// backend.
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes all pairs atomically.
	SetMany(ctx context.Context, values map[string][]byte) error
	// Delete removes the given keys atomically. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
	// Clear removes every key owned by this repository.
	Clear(ctx context.Context) error
}
