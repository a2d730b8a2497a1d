package service

import (
	"context"
	"log/slog"
	"time"

	"pulse/internal/repository"
)

// StorySweeper periodically deletes stories past their expiry. Listings
// already filter expired rows, so the sweeper only reclaims storage; the
// interval is not correctness-sensitive.
type StorySweeper struct {
	stories  repository.StoryRepository
	interval time.Duration
	logger   *slog.Logger
}

// NewStorySweeper creates a sweeper running at the given interval.
func NewStorySweeper(stories repository.StoryRepository, interval time.Duration, logger *slog.Logger) *StorySweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &StorySweeper{stories: stories, interval: interval, logger: logger}
}

// Run sweeps until the context is cancelled.
func (s *StorySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs a single pass.
func (s *StorySweeper) Sweep(ctx context.Context) {
	removed, err := s.stories.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.logger.ErrorContext(ctx, "story sweep failed", "error", err)
		return
	}
	if removed > 0 {
		s.logger.InfoContext(ctx, "swept expired stories", "removed", removed)
	}
}
