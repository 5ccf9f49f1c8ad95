package plugin

import (
	"image"
	"log/slog"
	"time"
)

// Plugin defines the lifecycle interface the host invokes on every widget.
// Calls are made synchronously and serially; implementations must degrade to
// no-ops on internal failure rather than panic into the host's render loop.
type Plugin interface {
	// Update fetches/refreshes data for this plugin
	Update()

	// Display renders this plugin onto its display surface. When forceClear
	// is true the surface is cleared and redrawn even if data is unchanged.
	Display(forceClear bool)

	// ValidateConfig reports whether the plugin configuration is usable
	ValidateConfig() bool
}

// DisplaySurface is the host-owned raster target a widget draws into.
type DisplaySurface interface {
	Width() int
	Height() int

	// SetImage stages a finished frame; UpdateDisplay pushes it to hardware.
	SetImage(img image.Image)
	UpdateDisplay()
	Clear()
}

// CacheStore is the host-owned cache shared by all widgets. Get rejects
// entries older than maxAge even if their stored TTL has not elapsed.
type CacheStore interface {
	Get(key string, maxAge time.Duration) (any, bool)
	Set(key string, value any, ttl time.Duration)
}

// UsageCounter meters outbound API calls. It is best-effort: callers treat
// it as fire-and-forget and swallow any failure.
type UsageCounter interface {
	Increment(kind string, count int)
}

// NopCounter is the default UsageCounter when the host provides none.
type NopCounter struct{}

// Increment discards the sample.
func (NopCounter) Increment(string, int) {}

// HostServices bundles the optional collaborators the host hands to a
// widget at construction time.
type HostServices struct {
	Counter UsageCounter
	Logger  *slog.Logger
}
