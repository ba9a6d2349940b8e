// Package store provides the persistent key-value interface behind the
// activity collection, with SQLite and in-memory implementations.
package store

import (
	"context"
	"errors"
)

// ActivitiesKey is the fixed key holding the serialized activity collection.
const ActivitiesKey = "@activity_tasks"

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store closed")

// KV defines the persistent key-value storage interface.
type KV interface {
	// Get returns the value stored under key. ok is false when the key
	// has never been set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Close closes the store.
	Close() error
}
