package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize bounds the number of cached entries when the host does not
// configure one.
const DefaultSize = 64

type entry struct {
	value    any
	storedAt time.Time
	ttl      time.Duration
}

// Memory is an in-memory CacheStore over a bounded LRU. Entries carry their
// store time so Get can enforce both the caller's maxAge and the TTL the
// writer declared.
type Memory struct {
	entries *lru.Cache[string, entry]
	now     func() time.Time
}

// NewMemory creates a cache bounded to size entries.
func NewMemory(size int) *Memory {
	if size <= 0 {
		size = DefaultSize
	}
	c, _ := lru.New[string, entry](size)
	return &Memory{
		entries: c,
		now:     time.Now,
	}
}

// Get returns the cached value if it is younger than both maxAge and the
// stored TTL. An entry aged exactly at a limit is expired.
func (m *Memory) Get(key string, maxAge time.Duration) (any, bool) {
	e, ok := m.entries.Get(key)
	if !ok {
		return nil, false
	}

	age := m.now().Sub(e.storedAt)
	if age >= maxAge || (e.ttl > 0 && age >= e.ttl) {
		m.entries.Remove(key)
		return nil, false
	}
	return e.value, true
}

// Set stores a value with the given TTL, replacing any previous entry.
func (m *Memory) Set(key string, value any, ttl time.Duration) {
	m.entries.Add(key, entry{
		value:    value,
		storedAt: m.now(),
		ttl:      ttl,
	})
}
