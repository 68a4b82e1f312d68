package caltrainlive

import (
	"sync"
	"time"
)

// ttlCache memoizes a single value with a time-to-live. The mutex is held
// across a rebuild so concurrent callers during expiry wait for one fetch
// instead of racing; a rebuild either fully replaces the value or leaves the
// previous one intact.
type ttlCache[T any] struct {
	mu        sync.Mutex
	value     T
	hasValue  bool
	fetchedAt time.Time
	ttl       time.Duration
}

func newTTLCache[T any](ttl time.Duration) *ttlCache[T] {
	return &ttlCache[T]{ttl: ttl}
}

// GetOrRefresh returns the cached value while it is fresh. Once expired it
// calls build; on success the value is replaced, on failure a stale value is
// served when one exists. Serving stale data beats serving nothing. build
// receives whether a stale value is available, so a builder can decline in
// favor of it rather than produce a worse result.
func (c *ttlCache[T]) GetOrRefresh(build func(hasStale bool) (T, bool)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hasValue && time.Since(c.fetchedAt) < c.ttl {
		return c.value, true
	}
	if v, ok := build(c.hasValue); ok {
		c.value = v
		c.hasValue = true
		c.fetchedAt = time.Now()
		return v, true
	}
	if c.hasValue {
		return c.value, true
	}
	var zero T
	return zero, false
}

// Age reports how old the cached value is; ok is false when nothing has been
// cached yet.
func (c *ttlCache[T]) Age() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasValue {
		return 0, false
	}
	return time.Since(c.fetchedAt), true
}
