package storage

import (
	"context"
	"sync"
)

// MemoryRepo keeps blobs in process memory. Used by tests and by
// `storage.memory: true` runs.
type MemoryRepo struct {
	mu    sync.Mutex
	blobs map[string][]byte
	saves int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{blobs: make(map[string][]byte)}
}

func (r *MemoryRepo) LoadBlob(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (r *MemoryRepo) SaveBlob(_ context.Context, key string, blob []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, len(blob))
	copy(b, blob)
	r.blobs[key] = b
	r.saves++
	return nil
}

func (r *MemoryRepo) DeleteBlob(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blobs, key)
	return nil
}

// Saves reports how many times SaveBlob succeeded.
func (r *MemoryRepo) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}
