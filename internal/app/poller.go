package app

import (
	"context"
	"log"
	"time"

	"rentdesk/internal/api"
	"rentdesk/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute

	// uiTickInterval drives the UI's store snapshot reads. It stays short
	// regardless of the poll cadence so mutations show up promptly.
	uiTickInterval = 2 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off exponentially while the backend is unreachable.
// It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, client api.Backend, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			if err := refresh(ctx, store, client); err != nil {
				failures++
			} else {
				failures = 0
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(calculateBackoff(failures, interval)):
			}
		}
	}()
}

// calculateBackoff doubles the wait per consecutive failure, capped at
// maxBackoff. Zero failures yields the base interval.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

func refresh(ctx context.Context, store *state.Store, client api.Backend) error {
	customers, err := client.Customers(ctx)
	if err != nil {
		store.Update(nil, err)
		log.Printf("customers poll failed: %v", err)
		return err
	}
	titles, err := client.Films(ctx)
	if err != nil {
		store.Update(nil, err)
		log.Printf("films poll failed: %v", err)
		return err
	}
	staff, err := client.Staff(ctx)
	if err != nil {
		store.Update(nil, err)
		log.Printf("staff poll failed: %v", err)
		return err
	}
	report, err := client.Unreturned(ctx)
	if err != nil {
		store.Update(nil, err)
		log.Printf("unreturned poll failed: %v", err)
		return err
	}

	store.Update(&state.Data{
		Customers:  customers,
		Titles:     titles,
		Staff:      staff,
		Unreturned: report.Rentals,
		Summary:    report.Summary,
	}, nil)
	return nil
}
