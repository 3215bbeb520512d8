package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no blob is stored under a key.
var ErrNotFound = errors.New("save slot not found")

// Repository persists opaque game-state blobs keyed by a fixed string.
type Repository interface {
	LoadBlob(ctx context.Context, key string) ([]byte, error)
	SaveBlob(ctx context.Context, key string, blob []byte) error
	DeleteBlob(ctx context.Context, key string) error
}
