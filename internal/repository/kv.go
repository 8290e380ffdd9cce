package repository

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// KVEntry is one stored value together with the codec that produced it.
type KVEntry struct {
	Key       string
	Value     []byte
	Codec     string
	UpdatedAt time.Time
}

type KVRepo interface {
	Get(ctx context.Context, key string) (*KVEntry, error)
	Put(ctx context.Context, e *KVEntry) error
}
