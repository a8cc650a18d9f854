// Package ratelimit implements the fixed-window counter that gates the AI
// insight endpoint. State lives in process memory: counts reset on restart
// and are not shared across instances, which is fine for a single-instance
// deployment.
package ratelimit

import (
	"sync"
	"time"
)

type entry struct {
	count   int
	resetAt time.Time
}

// Limiter counts requests per user inside a fixed window. Construct one in
// main and hand it to whatever needs gating; there is no package-level state.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry

	limit  int
	window time.Duration
	now    func() time.Time
}

func NewLimiter(limit int, window time.Duration) *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Check records one request for the user and reports whether it is allowed
// and how many requests remain in the current window. The first request of a
// window (or of a user never seen before) starts a fresh window. Once the
// limit is hit, further requests are denied with remaining 0 until the
// window expires.
func (l *Limiter) Check(userID string) (ok bool, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, exists := l.entries[userID]

	if !exists || now.After(e.resetAt) {
		l.entries[userID] = &entry{count: 1, resetAt: now.Add(l.window)}
		return true, l.limit - 1
	}

	if e.count >= l.limit {
		return false, 0
	}

	e.count++
	return true, l.limit - e.count
}
