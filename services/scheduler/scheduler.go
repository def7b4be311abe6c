package scheduler

import (
	"context"
	"sale-alerts/models/constants"
	"time"

	"github.com/rs/zerolog/log"
)

func New(interval time.Duration, cycle Cycle) *Impl {
	return &Impl{interval: interval, cycle: cycle}
}

// Start runs the loop in the background until ctx is cancelled or Stop is called.
func (s *Impl) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		s.Run(ctx)
	}()
}

// Stop asks the loop to exit and waits for it. A cycle in flight is allowed to finish.
func (s *Impl) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

// Run executes a cycle right away, then again each time interval has elapsed since the previous
// one ended. Cancellation is only observed between cycles.
func (s *Impl) Run(ctx context.Context) {
	log.Info().Str(constants.LogInterval, s.interval.String()).Msg("Scheduler started")

	for ctx.Err() == nil {
		s.runCycle(ctx)

		timer := time.NewTimer(s.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}

	log.Info().Msg("Scheduler stopped")
}

func (s *Impl) runCycle(ctx context.Context) {
	start := time.Now()

	// Detached so that shutdown never interrupts a ledger commit.
	if err := s.cycle(context.WithoutCancel(ctx)); err != nil {
		log.Error().Err(err).
			Str(constants.LogInterval, s.interval.String()).
			Msg("Cycle failed, retrying at next interval")
		return
	}

	log.Debug().Dur("elapsed", time.Since(start)).Msg("Cycle done")
}
