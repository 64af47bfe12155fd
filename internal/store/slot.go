// Package store persists each board collection as one JSON document in a
// key-value slot.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Slot.Get when nothing is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// Slot is a single-value-per-key storage backend. Set overwrites.
type Slot interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}
