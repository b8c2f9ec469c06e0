package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by SessionStore.Get when the key is absent.
var ErrKeyNotFound = errors.New("session store: key not found")

// SessionStore is the key-value port the session service persists through.
// Implementations hold string values under string keys; Delete of an absent
// key is a no-op.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
