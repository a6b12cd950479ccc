package app

import (
	"context"
	"testing"
	"time"

	"rentdesk/internal/config"
	"rentdesk/internal/state"
)

func TestUIOptions_TickIndependentOfPollInterval(t *testing.T) {
	cfg := config.Config{PollEvery: time.Hour, ReportLimit: 25}
	opts := uiOptions(context.Background(), nil, &state.Store{}, cfg, "Slate", "")

	if opts.PollTick != uiTickInterval {
		t.Fatalf("PollTick = %v, want %v", opts.PollTick, uiTickInterval)
	}
	if opts.PollTick >= cfg.PollEvery {
		t.Fatalf("PollTick = %v, not shorter than poll interval %v", opts.PollTick, cfg.PollEvery)
	}
	if opts.ReportLimit != 25 {
		t.Fatalf("ReportLimit = %d, want 25", opts.ReportLimit)
	}
	if opts.ThemeName != "Slate" {
		t.Fatalf("ThemeName = %q, want Slate", opts.ThemeName)
	}
}
