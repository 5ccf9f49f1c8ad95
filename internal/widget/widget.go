package widget

import (
	"log/slog"

	"github.com/ledmatrix/ytstats/internal/assets"
	"github.com/ledmatrix/ytstats/internal/config"
	"github.com/ledmatrix/ytstats/internal/model"
	"github.com/ledmatrix/ytstats/internal/plugin"
	"github.com/ledmatrix/ytstats/internal/render"
	"github.com/ledmatrix/ytstats/internal/youtube"
)

// Usage counter kind for metered API calls
const counterKind = "youtube"

// Widget displays YouTube channel statistics on the host's panel: channel
// name, subscriber count, and view count next to the YouTube logo.
//
// The host calls Update and Display synchronously and serially; the widget
// never spawns goroutines of its own.
type Widget struct {
	id       string
	cfg      config.Widget
	surface  plugin.DisplaySurface
	cache    plugin.CacheStore
	counter  plugin.UsageCounter
	client   *youtube.Client
	composer *render.Composer
	logger   *slog.Logger

	state         model.WidgetState
	stats         *model.Stats // latest fetched snapshot
	lastDisplayed *model.Stats // snapshot on screen, for dirty-check redraws
}

// New constructs the widget from the host-supplied option map (secrets
// already merged in). Invalid configuration or a missing logo disables the
// widget permanently.
func New(id string, options map[string]any, surface plugin.DisplaySurface, cacheStore plugin.CacheStore, services plugin.HostServices) *Widget {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	counter := services.Counter
	if counter == nil {
		counter = plugin.NopCounter{}
	}

	w := &Widget{
		id:      id,
		cfg:     config.FromOptions(options),
		surface: surface,
		cache:   cacheStore,
		counter: counter,
		client:  youtube.NewClient(),
		logger:  logger.With("plugin", id),
		state:   model.StateNoData,
	}

	if err := w.cfg.Validate(); err != nil {
		w.logger.Error("invalid configuration", "error", err)
		w.state = model.StateDisabled
		return w
	}

	w.initDisplay()
	if w.state.IsEnabled() {
		w.logger.Info("youtube stats widget initialized", "channel", w.cfg.ChannelID)
	} else {
		w.logger.Info("youtube stats widget disabled")
	}
	return w
}

// initDisplay loads the font and logo. A missing font degrades to the
// built-in face; a missing logo disables the widget.
func (w *Widget) initDisplay() {
	face, err := assets.LoadFont(assets.DefaultFontPath)
	if err != nil {
		w.logger.Warn("font not loaded, using default face", "error", err)
		face = assets.DefaultFace()
	}

	logo, err := assets.LoadLogo(assets.DefaultLogoPath)
	if err != nil {
		w.logger.Error("logo not loaded, disabling widget", "error", err)
		w.state = model.StateDisabled
		return
	}

	w.composer = render.NewComposer(logo, face, w.logger)
}

// Config returns the widget's immutable configuration.
func (w *Widget) Config() config.Widget {
	return w.cfg
}

// State returns the current lifecycle state.
func (w *Widget) State() model.WidgetState {
	return w.state
}

// ValidateConfig reports whether the widget configuration is usable.
func (w *Widget) ValidateConfig() bool {
	if err := w.cfg.Validate(); err != nil {
		w.logger.Error("configuration invalid", "error", err)
		return false
	}
	return true
}

// Update refreshes the stats snapshot, subject to the cache TTL. A failed
// fetch keeps the previous snapshot.
func (w *Widget) Update() {
	if !w.state.IsEnabled() {
		return
	}

	if stats := w.fetchStats(); stats != nil {
		w.stats = stats
		w.state = model.StateHasData
	}
}

// Display renders the current snapshot onto the surface. Rendering is
// skipped when the snapshot is unchanged since the last hand-off, unless
// forceClear requests a full redraw.
func (w *Widget) Display(forceClear bool) {
	if !w.state.IsEnabled() {
		return
	}

	if w.stats == nil {
		w.Update()
	}
	if w.stats == nil {
		w.logger.Warn("no channel stats available to display")
		return
	}

	changed := w.lastDisplayed == nil || !w.lastDisplayed.Equal(*w.stats)
	if !forceClear && !changed {
		return
	}

	if forceClear {
		w.surface.Clear()
	}

	img := w.composer.Compose(w.surface.Width(), w.surface.Height(), w.stats)
	if img == nil {
		return
	}

	w.surface.SetImage(img)
	w.surface.UpdateDisplay()

	shown := *w.stats
	w.lastDisplayed = &shown
	w.logger.Debug("displayed channel stats", "channel", shown.Name)
}

// fetchStats returns a snapshot from cache or the API, or nil on any
// failure. Only real API calls are metered; cache hits cost no quota.
func (w *Widget) fetchStats() *model.Stats {
	if w.cfg.ChannelID == "" || w.cfg.APIKey == "" {
		w.logger.Error("channel_id or api_key not configured")
		return nil
	}

	key := w.cacheKey()
	if cached, ok := w.cache.Get(key, w.cfg.RefreshInterval()); ok {
		if stats, ok := cached.(model.Stats); ok {
			w.logger.Debug("using cached channel stats")
			return &stats
		}
	}

	stats, err := w.client.ChannelStats(w.cfg.ChannelID, w.cfg.APIKey)
	if err != nil {
		w.logger.Error("fetching channel stats failed", "error", err)
		return nil
	}

	w.countAPICall()
	w.cache.Set(key, stats, w.cfg.RefreshInterval())
	w.logger.Info("fetched channel stats", "channel", stats.Name)
	return &stats
}

func (w *Widget) cacheKey() string {
	return w.id + "_channel_stats"
}

// countAPICall meters one API call. The counter is best-effort; a panicking
// implementation must not affect the fetch outcome.
func (w *Widget) countAPICall() {
	defer func() {
		_ = recover()
	}()
	w.counter.Increment(counterKind, 1)
}
