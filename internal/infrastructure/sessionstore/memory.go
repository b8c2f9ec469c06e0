package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/userportal/gateway/internal/core/ports"
)

const defaultSweepInterval = time.Minute

// Memory is an in-process SessionStore with per-key TTL. It backs tests and
// redis-less single-node deployments.
type Memory struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]memoryItem
}

type memoryItem struct {
	value   string
	expires time.Time
}

// NewMemory builds a Memory store. ttl <= 0 disables expiry.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, items: make(map[string]memoryItem)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()

	if !ok || item.expired(time.Now()) {
		return "", ports.ErrKeyNotFound
	}
	return item.value, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	var expires time.Time
	if m.ttl > 0 {
		expires = time.Now().Add(m.ttl)
	}

	m.mu.Lock()
	m.items[key] = memoryItem{value: value, expires: expires}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}

// Ping always succeeds; the process-local store has no dependency to check.
func (m *Memory) Ping(context.Context) error {
	return nil
}

// StartSweeper launches a goroutine that evicts expired keys until ctx is
// cancelled. Expired keys are already invisible to Get; the sweep only
// reclaims memory.
func (m *Memory) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				m.sweep(now)
			}
		}
	}()
}

func (m *Memory) sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, item := range m.items {
		if item.expired(now) {
			delete(m.items, key)
		}
	}
}

func (i memoryItem) expired(now time.Time) bool {
	return !i.expires.IsZero() && now.After(i.expires)
}
