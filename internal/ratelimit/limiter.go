// Package ratelimit implements the fixed-window admission control guarding
// the generative provider's upstream quota.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultLimit is the number of generative calls admitted per key per
	// window.
	DefaultLimit = 20
	// DefaultWindow is the admission window length.
	DefaultWindow = 60 * time.Second
)

type window struct {
	count   int
	resetAt time.Time
}

// Limiter tracks one counter-and-reset-time pair per client key. State is
// shared across concurrent requests from the same key, so check-and-increment
// happens under a single mutex; two concurrent requests can never both
// observe the last free slot.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
	now     func() time.Time // injectable for tests
}

func NewLimiter(limit int, period time.Duration) *Limiter {
	return &Limiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
	}
}

// Allow admits or denies one call for the key. On denial it returns the time
// until the window resets, suitable for a Retry-After hint.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) || now.Equal(w.resetAt) {
		l.windows[key] = &window{count: 1, resetAt: now.Add(l.period)}
		return true, 0
	}

	if w.count >= l.limit {
		return false, w.resetAt.Sub(now)
	}
	w.count++
	return true, 0
}

// ClientKey derives the admission key from the caller's network identity:
// the first hop of X-Forwarded-For when present, otherwise the direct
// connection address.
func ClientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, found := strings.Cut(fwd, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
