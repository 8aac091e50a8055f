package usecase

import (
	"context"
	"log/slog"
	"time"

	"orbit-ads/internal/core/port"
)

// RetentionSweeper periodically deletes interaction records past their
// retention windows: reported interactions after rawTTL, delivery log
// entries after deliveredTTL. It owns its schedule the same way the ad
// cache does.
type RetentionSweeper struct {
	interactions port.InteractionRepository
	logger       *slog.Logger
	interval     time.Duration
	rawTTL       time.Duration
	deliveredTTL time.Duration

	stop chan struct{}
	done chan struct{}
}

// NewRetentionSweeper creates a sweeper running every interval.
func NewRetentionSweeper(interactions port.InteractionRepository, logger *slog.Logger, interval, rawTTL, deliveredTTL time.Duration) *RetentionSweeper {
	return &RetentionSweeper{
		interactions: interactions,
		logger:       logger,
		interval:     interval,
		rawTTL:       rawTTL,
		deliveredTTL: deliveredTTL,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start launches the sweep loop.
func (s *RetentionSweeper) Start(ctx context.Context) {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep(ctx)
			case <-s.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop terminates the sweep loop and waits for it to exit.
func (s *RetentionSweeper) Stop() {
	close(s.stop)
	<-s.done
}

func (s *RetentionSweeper) sweep(ctx context.Context) {
	now := time.Now().UTC()
	purged, err := s.interactions.PurgeBefore(ctx, now.Add(-s.rawTTL), now.Add(-s.deliveredTTL))
	if err != nil {
		s.logger.Error("retention sweep failed", slog.Any("error", err))
		return
	}
	if purged > 0 {
		s.logger.Info("retention sweep purged records", slog.Int64("purged", purged))
	}
}
