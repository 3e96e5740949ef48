// Package store provides the key-value backends used by dataset
// repositories: in-memory for tests and single runs, Redis for sharing a
// lookup cache across runs.
package store

import (
	"context"

	"github.com/featkit/featkit/core"
)

// ErrNotFound is returned when a key does not exist (or has expired).
var ErrNotFound = core.NewDomainError(core.ModuleStore, core.ErrorCodeNotFound, "store: key not found")

// Store is the minimal key-value contract the repositories need.
type Store interface {
	Name() string

	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds ...int) error
	Delete(ctx context.Context, key string) error

	BatchGet(ctx context.Context, keys []string) (map[string][]byte, error)
	BatchSet(ctx context.Context, kvs map[string][]byte, ttlSeconds ...int) error

	Close() error
}
