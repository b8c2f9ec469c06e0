package sessionstore

import (
	"context"

	"github.com/userportal/gateway/internal/core/ports"
)

// Namespaced returns a view of store scoped to one session id. Key format:
// session:<sid>:<key>. The session service sees only its own token/user pair.
func Namespaced(store ports.SessionStore, sid string) ports.SessionStore {
	return &namespaced{inner: store, prefix: "session:" + sid + ":"}
}

type namespaced struct {
	inner  ports.SessionStore
	prefix string
}

func (n *namespaced) Get(ctx context.Context, key string) (string, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+key)
}
