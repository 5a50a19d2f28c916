package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	v   []byte
	exp time.Time
}

// TTLCache is an in-process BytesCache. When full, the entry closest to
// expiry is evicted.
type TTLCache struct {
	mu      sync.RWMutex
	m       map[string]entry
	maxSize int
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

func NewTTLCache(maxSize int, cleanupEvery time.Duration) *TTLCache {
	if maxSize <= 0 {
		maxSize = 1000
	}
	c := &TTLCache{
		m:       make(map[string]entry),
		maxSize: maxSize,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	if cleanupEvery > 0 {
		go c.janitor(cleanupEvery)
	}
	return c
}

func (c *TTLCache) GetBytes(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if c.expired(e) {
		c.dropExpired(key)
		return nil, false, nil
	}
	return e.v, true, nil
}

// dropExpired deletes key only if the entry is still expired under the write
// lock, so a SetBytes racing with the read keeps its value.
func (c *TTLCache) dropExpired(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.m[key]; ok && c.expired(e) {
		delete(c.m, key)
	}
}

func (c *TTLCache) SetBytes(_ context.Context, key string, value []byte, ttl time.Duration) error {
	var exp time.Time
	if ttl > 0 {
		exp = c.now().Add(ttl)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.m[key]; !exists && len(c.m) >= c.maxSize {
		c.evictLocked()
	}
	c.m[key] = entry{v: value, exp: exp}
	return nil
}

func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

func (c *TTLCache) Close() error {
	c.once.Do(func() { close(c.stop) })
	return nil
}

func (c *TTLCache) expired(e entry) bool {
	return !e.exp.IsZero() && c.now().After(e.exp)
}

func (c *TTLCache) evictLocked() {
	var victim string
	var soonest time.Time
	for k, e := range c.m {
		if c.expired(e) {
			delete(c.m, k)
			return
		}
		if e.exp.IsZero() {
			continue
		}
		if victim == "" || e.exp.Before(soonest) {
			victim, soonest = k, e.exp
		}
	}
	if victim == "" {
		for k := range c.m {
			victim = k
			break
		}
	}
	delete(c.m, victim)
}

func (c *TTLCache) janitor(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-t.C:
			c.mu.Lock()
			for k, e := range c.m {
				if c.expired(e) {
					delete(c.m, k)
				}
			}
			c.mu.Unlock()
		}
	}
}
