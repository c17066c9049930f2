// Package metadata is the client's durable key/value store: a single
// metadata(key, value) table in the local SQLite database. The session
// state container keeps its persisted keys here.
package metadata

import (
	"context"
)

// Repository reads and writes raw values by key.
//
// Get returns (nil, nil) for a missing key. Delete is idempotent and removes
// every key given in one statement.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
