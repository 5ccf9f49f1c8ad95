package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ledmatrix/ytstats/internal/cache"
	"github.com/ledmatrix/ytstats/internal/config"
	"github.com/ledmatrix/ytstats/internal/counter"
	"github.com/ledmatrix/ytstats/internal/display"
	"github.com/ledmatrix/ytstats/internal/plugin"
	"github.com/ledmatrix/ytstats/internal/widget"
)

const (
	logFile    = "ytstats.log"
	maxLogMB   = 10
	maxBackups = 5

	frameInterval = time.Second
)

func setupLogging() *slog.Logger {
	rotating := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxLogMB,
		MaxBackups: maxBackups,
	}
	logger := slog.New(slog.NewTextHandler(io.MultiWriter(os.Stdout, rotating), nil))
	slog.SetDefault(logger)
	return logger
}

func main() {
	configPath := flag.String("config", "config/config.yml", "host configuration file")
	flag.Parse()

	logger := setupLogging()

	cfg, err := config.LoadHost(*configPath)
	if err != nil {
		logger.Error("loading host config failed", "error", err)
		os.Exit(1)
	}

	secrets, err := config.LoadSecrets(cfg.SecretsPath)
	if err != nil {
		logger.Error("loading secrets failed", "error", err)
		os.Exit(1)
	}

	surface := display.NewPNGSurface(cfg.PanelWidth, cfg.PanelHeight, cfg.OutputPath, logger)
	if err := surface.EnsureOutputDir(); err != nil {
		logger.Error("preparing output directory failed", "error", err)
		os.Exit(1)
	}

	store := cache.NewMemory(cfg.CacheSize)
	services := plugin.HostServices{
		Counter: counter.NewLog(logger),
		Logger:  logger,
	}

	var widgets []*widget.Widget
	for _, entry := range cfg.Widgets {
		options := config.MergeSecrets(entry.Options, secrets)
		id := fmt.Sprintf("%s_%s", entry.Name, uuid.NewString()[:8])

		w := widget.New(id, options, surface, store, services)
		if !w.ValidateConfig() {
			logger.Warn("skipping widget with invalid config", "name", entry.Name)
			continue
		}
		widgets = append(widgets, w)
	}

	if len(widgets) == 0 {
		logger.Error("no usable widgets configured")
		os.Exit(1)
	}

	logger.Info("host started", "widgets", len(widgets),
		"panel", fmt.Sprintf("%dx%d", cfg.PanelWidth, cfg.PanelHeight))
	runLoop(widgets, logger)
}

// runLoop drives widgets serially: one frame tick per second, rotating the
// active widget after its display duration elapses. Rotation forces a clear
// so leftovers from the previous widget never linger.
func runLoop(widgets []*widget.Widget, logger *slog.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	active := 0
	rotateAt := time.Now().Add(displayDuration(widgets[active]))

	widgets[active].Update()
	widgets[active].Display(true)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			logger.Info("shutting down")
			return
		case now := <-ticker.C:
			force := false
			if len(widgets) > 1 && now.After(rotateAt) {
				active = (active + 1) % len(widgets)
				rotateAt = now.Add(displayDuration(widgets[active]))
				force = true
			}

			w := widgets[active]
			w.Update() // cheap between refreshes thanks to the cache TTL
			w.Display(force)
		}
	}
}

func displayDuration(w *widget.Widget) time.Duration {
	return time.Duration(w.Config().DisplayDuration * float64(time.Second))
}
