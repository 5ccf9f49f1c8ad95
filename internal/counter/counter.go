package counter

import (
	"log/slog"
	"sync"
)

// Log is a UsageCounter that keeps in-memory totals and logs each sample.
// It is the demo host's stand-in for a real metering backend.
type Log struct {
	mu     sync.Mutex
	totals map[string]int
	logger *slog.Logger
}

// NewLog creates a logging counter.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{
		totals: map[string]int{},
		logger: logger,
	}
}

// Increment records count calls of the given kind.
func (l *Log) Increment(kind string, count int) {
	l.mu.Lock()
	l.totals[kind] += count
	total := l.totals[kind]
	l.mu.Unlock()

	l.logger.Info("api usage", "kind", kind, "count", count, "total", total)
}

// Total returns the accumulated count for a kind.
func (l *Log) Total(kind string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totals[kind]
}
