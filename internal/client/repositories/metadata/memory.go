package metadata

import (
	"context"
	"sync"
)

// MemoryRepository keeps metadata in process memory. Nothing survives a
// restart; used with "-s memory" and in tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{values: make(map[string][]byte)}
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(r.values[key]), nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = clone(value)
	return nil
}

func (r *MemoryRepository) SetMany(_ context.Context, values map[string][]byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range values {
		r.values[k] = clone(v)
	}
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.values, k)
	}
	return nil
}

func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = make(map[string][]byte)
	return nil
}
