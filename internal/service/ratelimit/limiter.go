package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type client struct {
	lim  *rate.Limiter
	seen time.Time
}

// Limiter is a per-key token bucket. Idle keys are dropped by Sweep.
type Limiter struct {
	mu    sync.Mutex
	m     map[string]*client
	limit rate.Limit
	burst int
	now   func() time.Time
}

// New allows rps requests per second per key with the given burst.
// rps <= 0 disables limiting.
func New(rps float64, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	lim := rate.Limit(rps)
	if rps <= 0 {
		lim = rate.Inf
	}
	return &Limiter{m: make(map[string]*client), limit: lim, burst: burst, now: time.Now}
}

// Allow returns true if one token can be consumed for key.
func (l *Limiter) Allow(key string) bool {
	now := l.now()
	l.mu.Lock()
	c, ok := l.m[key]
	if !ok {
		c = &client{lim: rate.NewLimiter(l.limit, l.burst)}
		l.m[key] = c
	}
	c.seen = now
	l.mu.Unlock()
	return c.lim.AllowN(now, 1)
}

// Sweep forgets keys idle for longer than idle and returns how many were removed.
func (l *Limiter) Sweep(idle time.Duration) int {
	cutoff := l.now().Add(-idle)
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for k, c := range l.m {
		if c.seen.Before(cutoff) {
			delete(l.m, k)
			removed++
		}
	}
	return removed
}
