package app

import (
	"context"
	"fmt"
	"time"

	"rentdesk/internal/api"
	"rentdesk/internal/config"
	"rentdesk/internal/prefs"
	"rentdesk/internal/state"
	"rentdesk/internal/ui"
)

// Options configure the rentdesk application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/rentdesk/prefs.toml
	PollEvery  int    // seconds; zero uses the configured interval
}

// Run boots the rentdesk TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := api.NewClient(cfg.APIURL, cfg.Timeout)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}

	interval := cfg.PollEvery
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Start background poller
	StartPoller(ctx, store, client, interval)

	// Do initial refresh to populate store before UI starts
	_ = refresh(ctx, store, client)

	return ui.Run(uiOptions(ctx, client, store, cfg, userPrefs.Theme, opts.PrefsPath))
}

// uiOptions assembles the UI configuration. The snapshot tick is a short
// fixed interval independent of the poll cadence, so a completed mutation
// shows up on the next store read instead of a full poll cycle later.
func uiOptions(ctx context.Context, client api.Backend, store *state.Store, cfg config.Config, theme, prefsPath string) ui.Options {
	return ui.Options{
		Context:     ctx,
		Client:      client,
		Store:       store,
		PollTick:    uiTickInterval,
		ReportLimit: cfg.ReportLimit,
		ThemeName:   theme,
		PrefsPath:   prefsPath,
	}
}
