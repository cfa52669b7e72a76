// Package scheduler runs the daily expiry sweep that completes overdue
// todos.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// OverdueSweeper is the slice of the todo usecase the sweeper needs.
type OverdueSweeper interface {
	SweepOverdue(ctx context.Context, now time.Time) (int64, error)
}

// ExpirySweeper fires once a day at a fixed UTC hour and bulk-completes
// every incomplete todo whose due date has passed. Each firing is
// self-contained: a failed sweep is logged and the next one still runs.
type ExpirySweeper struct {
	todos    OverdueSweeper
	hourUTC  int
	log      *zap.Logger
	stopChan chan struct{}
}

// NewExpirySweeper creates a sweeper firing daily at hourUTC:00 UTC.
func NewExpirySweeper(todos OverdueSweeper, hourUTC int, log *zap.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		todos:    todos,
		hourUTC:  hourUTC,
		log:      log,
		stopChan: make(chan struct{}),
	}
}

// Start begins the sweep loop. The first firing is the next occurrence of
// the configured hour; there is no catch-up run at startup.
func (s *ExpirySweeper) Start() {
	s.log.Info("expiry sweeper started", zap.Int("hour_utc", s.hourUTC))

	go func() {
		for {
			timer := time.NewTimer(time.Until(nextFiring(time.Now().UTC(), s.hourUTC)))
			select {
			case <-timer.C:
				s.sweep()
			case <-s.stopChan:
				timer.Stop()
				s.log.Info("expiry sweeper stopped")
				return
			}
		}
	}()
}

// Stop ends the sweep loop.
func (s *ExpirySweeper) Stop() {
	close(s.stopChan)
}

func (s *ExpirySweeper) sweep() {
	affected, err := s.todos.SweepOverdue(context.Background(), time.Now().UTC())
	if err != nil {
		s.log.Error("expiry sweep failed", zap.Error(err))
		return
	}
	if affected > 0 {
		s.log.Info("expiry sweep completed overdue todos", zap.Int64("count", affected))
	} else {
		s.log.Info("expiry sweep found no overdue todos")
	}
}

// nextFiring returns the next occurrence of hourUTC:00 strictly after now.
func nextFiring(now time.Time, hourUTC int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hourUTC, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
