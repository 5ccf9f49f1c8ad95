package cache

// Package cache provides the host-side CacheStore implementation: a bounded
// in-memory LRU with per-entry timestamps and TTLs.
