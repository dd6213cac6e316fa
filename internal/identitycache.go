package internal

import (
	"runtime"
	"sync"
	"weak"
)

// IdentityCache is the Go-native substitute for spec §4.5's "four
// caches (weak maps) hold the wrapper per target, under each
// combination of {readonly, writable} x {deep, shallow}". Go has no
// runtime Proxy and no implicit object identity hook, so the cache is
// keyed explicitly by whatever identity the caller derives (typically
// a target pointer combined with the wrap-mode), and entries are held
// with weak.Pointer so a wrapper that's no longer reachable from
// anywhere else doesn't keep its target (or vice versa) alive forever.
type IdentityCache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]weak.Pointer[V]
}

func NewIdentityCache[K comparable, V any]() *IdentityCache[K, V] {
	return &IdentityCache[K, V]{entries: make(map[K]weak.Pointer[V])}
}

// GetOrCreate returns the cached value for key if it is still alive,
// or calls create, stores the result weakly, and registers a cleanup
// that drops the map entry once the value is collected.
func (c *IdentityCache[K, V]) GetOrCreate(key K, create func() *V) *V {
	c.mu.Lock()
	if wp, ok := c.entries[key]; ok {
		if v := wp.Value(); v != nil {
			c.mu.Unlock()
			return v
		}
		delete(c.entries, key)
	}
	c.mu.Unlock()

	v := create()

	c.mu.Lock()
	c.entries[key] = weak.Make(v)
	c.mu.Unlock()

	runtime.AddCleanup(v, func(k K) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if wp, ok := c.entries[k]; ok && wp.Value() == nil {
			delete(c.entries, k)
		}
	}, key)

	return v
}
