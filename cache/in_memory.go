package cache

import (
	"sync"
	"time"

	"github.com/cwbhub/hivemind/core"
)

// DefaultTTL applies when Set is called with a non-positive ttl and the
// namespace has no configured default.
const DefaultTTL = time.Hour

type entry struct {
	value     string
	expiresAt time.Time
}

// Stats reports cache effectiveness per namespace.
type Stats struct {
	Hits    int
	Misses  int
	Entries int
}

// HitRate returns the fraction of lookups served from the cache.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// InMemory is a process-local ResponseCache with per-namespace TTL
// defaults and lazy expiry.
type InMemory struct {
	mu         sync.RWMutex
	namespaces map[string]map[string]entry
	ttls       map[string]time.Duration
	hits       map[string]int
	misses     map[string]int
	now        func() time.Time
}

var _ core.ResponseCache = (*InMemory)(nil)

// Options configures an InMemory cache.
type Options struct {
	// NamespaceTTL overrides the default ttl for specific namespaces.
	NamespaceTTL map[string]time.Duration
	// Now stubs the clock in tests. Defaults to time.Now.
	Now func() time.Time
}

// NewInMemory creates an empty cache.
func NewInMemory(optFns ...func(o *Options)) *InMemory {
	opts := Options{Now: time.Now}
	for _, fn := range optFns {
		fn(&opts)
	}
	ttls := make(map[string]time.Duration, len(opts.NamespaceTTL))
	for ns, ttl := range opts.NamespaceTTL {
		ttls[ns] = ttl
	}
	return &InMemory{
		namespaces: make(map[string]map[string]entry),
		ttls:       ttls,
		hits:       make(map[string]int),
		misses:     make(map[string]int),
		now:        opts.Now,
	}
}

// Get returns the cached value for the key if present and not expired.
// Expired entries are removed on access.
func (c *InMemory) Get(namespace, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ns, exists := c.namespaces[namespace]
	if exists {
		if e, ok := ns[key]; ok {
			if c.now().Before(e.expiresAt) {
				c.hits[namespace]++
				return e.value, true
			}
			delete(ns, key)
		}
	}
	c.misses[namespace]++
	return "", false
}

// Set stores the value under namespace/key. A non-positive ttl falls back
// to the namespace default, then to DefaultTTL.
func (c *InMemory) Set(namespace, key, value string, ttl time.Duration) {
	if ttl <= 0 {
		if nsTTL, ok := c.ttls[namespace]; ok && nsTTL > 0 {
			ttl = nsTTL
		} else {
			ttl = DefaultTTL
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	ns, exists := c.namespaces[namespace]
	if !exists {
		ns = make(map[string]entry)
		c.namespaces[namespace] = ns
	}
	ns[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
}

// Flush drops every entry in the namespace and returns how many were
// removed. Counters are kept.
func (c *InMemory) Flush(namespace string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	ns, exists := c.namespaces[namespace]
	if !exists {
		return 0
	}
	n := len(ns)
	delete(c.namespaces, namespace)
	return n
}

// NamespaceStats returns the hit/miss counters and current entry count for
// the namespace.
func (c *InMemory) NamespaceStats(namespace string) Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Hits:    c.hits[namespace],
		Misses:  c.misses[namespace],
		Entries: len(c.namespaces[namespace]),
	}
}
