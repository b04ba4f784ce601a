package project

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Result is the outcome of one resolution.
type Result struct {
	Nodes      []Node
	Warnings   []Warning
	ResolvedAt time.Time
}

// ResolveFunc produces a fresh Result.
type ResolveFunc func(ctx context.Context) Result

// Memo caches the latest Result in memory for a short time. Concurrent
// callers of Get share a single resolution. Nothing is written to disk.
type Memo struct {
	resolve ResolveFunc
	ttl     time.Duration
	now     func() time.Time

	group singleflight.Group

	mu   sync.Mutex
	last *Result
}

// NewMemo wraps resolve with an in-memory cache that expires after ttl.
func NewMemo(ttl time.Duration, resolve ResolveFunc) *Memo {
	return &Memo{resolve: resolve, ttl: ttl, now: time.Now}
}

// Get returns the cached Result if it is younger than the ttl, otherwise
// resolves again.
func (m *Memo) Get(ctx context.Context) Result {
	m.mu.Lock()
	if m.last != nil && m.now().Sub(m.last.ResolvedAt) < m.ttl {
		r := *m.last
		m.mu.Unlock()
		return r
	}
	m.mu.Unlock()

	v, _, _ := m.group.Do("resolve", func() (any, error) {
		r := m.resolve(ctx)
		r.ResolvedAt = m.now()
		m.mu.Lock()
		m.last = &r
		m.mu.Unlock()
		return r, nil
	})
	return v.(Result)
}

// Invalidate drops the cached Result so the next Get resolves again.
func (m *Memo) Invalidate() {
	m.mu.Lock()
	m.last = nil
	m.mu.Unlock()
}
