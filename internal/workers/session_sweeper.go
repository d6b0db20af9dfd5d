// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/store"
)

// SessionSweeper deletes expired session rows on a fixed interval. Expired
// sessions are already rejected at login checks; sweeping only keeps the
// table small.
type SessionSweeper struct {
	sessions store.SessionRepository
	interval time.Duration
	logger   *logger.Logger

	wg sync.WaitGroup
}

func NewSessionSweeper(sessions store.SessionRepository, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *SessionSweeper) Run(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.sweep(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

// Wait blocks until a cancelled Run has returned.
func (s *SessionSweeper) Wait() {
	s.wg.Wait()
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	deleted, err := s.sessions.DeleteExpiredSessions(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Str("func", "*SessionSweeper.sweep").Msg("deleting expired sessions failed")
		}
		return
	}
	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Msg("expired sessions deleted")
	}
}
