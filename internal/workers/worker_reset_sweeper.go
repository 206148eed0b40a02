package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
)

// resetTokenSweeper periodically discards password-reset tokens that were
// issued longer than ttl ago. Sweeping is a storage-hygiene measure: a stale
// token that was never consumed stops occupying the unique reset_token slot
// of its user.
type resetTokenSweeper struct {
	repository store.UserRepository

	// ttl is how long an unconsumed token stays valid.
	ttl time.Duration

	// interval is how often the sweep runs.
	interval time.Duration

	ctx    context.Context
	logger *logger.Logger
}

// Run implements [Worker]. The sweep loop is spawned in its own goroutine
// and stops when the worker's context is cancelled.
func (s *resetTokenSweeper) Run() {
	go s.loop()
}

func (s *resetTokenSweeper) loop() {
	s.logger.Info().
		Dur("interval", s.interval).
		Dur("ttl", s.ttl).
		Msg("reset token sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info().Msg("reset token sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *resetTokenSweeper) sweep() {
	olderThan := time.Now().UTC().Add(-s.ttl)

	cleared, err := s.repository.ClearStaleResetTokens(s.ctx, olderThan)
	if err != nil {
		s.logger.Err(err).Str("func", "*resetTokenSweeper.sweep").Msg("sweep failed")
		return
	}

	if cleared > 0 {
		s.logger.Info().Int64("cleared", cleared).Msg("stale reset tokens discarded")
	}
}
