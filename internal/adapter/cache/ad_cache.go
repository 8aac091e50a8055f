// Package cache provides the in-process snapshot of the active-ad set the
// delivery pipeline scores against. The cache is read-mostly, refreshed on
// a fixed interval, and explicitly not authoritative: frequency capping
// and budget state always go to durable storage.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"orbit-ads/internal/core/port"
)

// AdCache holds a periodically refreshed snapshot of delivery candidates.
// It owns its refresh lifecycle; construct it, Start it, Stop it on
// shutdown. Snapshot reads never block a refresh in progress.
type AdCache struct {
	repo     port.AdRepository
	logger   *slog.Logger
	interval time.Duration

	mu          sync.RWMutex
	candidates  []port.AdCandidate
	refreshedAt time.Time

	stop chan struct{}
	done chan struct{}
}

// NewAdCache creates a cache refreshing from repo every interval.
func NewAdCache(repo port.AdRepository, logger *slog.Logger, interval time.Duration) *AdCache {
	return &AdCache{
		repo:     repo,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start performs an initial refresh and launches the refresh loop. A failed
// initial refresh is logged, not fatal; the loop retries on the next tick
// and Snapshot reports the cache as not ready until one succeeds.
func (c *AdCache) Start(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil {
		c.logger.Error("initial ad cache refresh failed", slog.Any("error", err))
	}
	go c.loop(ctx)
}

func (c *AdCache) loop(ctx context.Context) {
	defer close(c.done)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				c.logger.Error("ad cache refresh failed", slog.Any("error", err))
			}
		case <-c.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop terminates the refresh loop and waits for it to exit.
func (c *AdCache) Stop() {
	close(c.stop)
	<-c.done
}

// Refresh reloads the snapshot from the repository. On failure the previous
// snapshot stays in place; staleness up to the refresh interval is an
// accepted trade-off.
func (c *AdCache) Refresh(ctx context.Context) error {
	candidates, err := c.repo.ListActiveCandidates(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.candidates = candidates
	c.refreshedAt = time.Now()
	c.mu.Unlock()
	c.logger.Debug("ad cache refreshed", slog.Int("candidates", len(candidates)))
	return nil
}

// Snapshot returns the current candidate set. ok is false before the first
// successful refresh; callers then fall back to the repository.
func (c *AdCache) Snapshot() (candidates []port.AdCandidate, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.refreshedAt.IsZero() {
		return nil, false
	}
	return c.candidates, true
}
