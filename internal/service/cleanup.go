package service

import (
	"context"
	"time"

	"languager/internal/tempstore"

	"go.uber.org/zap"
)

// TempSweeper removes temp audio files left behind by crashed workflows
type TempSweeper struct {
	store  *tempstore.Store
	maxAge time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewTempSweeper creates a new sweeper
func NewTempSweeper(store *tempstore.Store, maxAge time.Duration, logger *zap.Logger) *TempSweeper {
	return &TempSweeper{
		store:  store,
		maxAge: maxAge,
		logger: logger,
		now:    time.Now,
	}
}

// Sweep removes temp files older than the configured max age
func (s *TempSweeper) Sweep() error {
	s.logger.Info("Starting temp file cleanup", zap.Duration("max_age", s.maxAge))

	removed, err := s.store.Sweep(s.now().Add(-s.maxAge))
	if err != nil {
		s.logger.Error("Failed to cleanup temp files", zap.Int("removed", removed), zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully", zap.Int("removed", removed))
	return nil
}

// Run sweeps once, then every interval until ctx is done
func (s *TempSweeper) Run(ctx context.Context, interval time.Duration) {
	_ = s.Sweep()

	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.Sweep()
		}
	}
}
