/*
Package game
File: runner.go
Description:
    The day heartbeat. A Runner ticks the hotel once per interval while it
    is running. Pausing cancels the ticker goroutine and waits for it, so
    no day is simulated after Pause returns.
*/

package game

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultDayInterval is the real time one in-game day lasts.
const DefaultDayInterval = 5 * time.Second

// Runner drives Hotel.AdvanceDay from a time.Ticker.
type Runner struct {
	hotel    *Hotel
	interval time.Duration
	logger   *log.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(hotel *Hotel, interval time.Duration, logger *log.Logger) *Runner {
	if interval <= 0 {
		interval = DefaultDayInterval
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{hotel: hotel, interval: interval, logger: logger}
}

// Running reports whether the ticker is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

// Start begins ticking. The loop also ends when ctx is cancelled.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.startLocked(ctx)
}

func (r *Runner) startLocked(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done
	r.hotel.SetRunning(true)
	r.logger.Info("simulation started", "interval", r.interval)

	go r.loop(loopCtx, done)
}

func (r *Runner) loop(ctx context.Context, done chan struct{}) {
	r.tick(ctx)
	close(done)
	r.stopped(done)
}

func (r *Runner) tick(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A pause may race with the tick; the cancelled context wins.
			if ctx.Err() != nil {
				return
			}
			r.hotel.AdvanceDay()
		}
	}
}

// stopped clears the runner when the loop ended on its own, that is when
// the parent context was cancelled rather than Pause being called.
func (r *Runner) stopped(done chan struct{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done != done {
		return
	}
	r.cancel()
	r.cancel = nil
	r.done = nil
	r.hotel.SetRunning(false)
	r.logger.Info("simulation stopped", "reason", "context done")
}

// Pause stops ticking and returns once the ticker goroutine has exited.
func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pauseLocked()
}

func (r *Runner) pauseLocked() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.cancel = nil
	r.done = nil
	r.hotel.SetRunning(false)
	r.logger.Info("simulation paused")
}

// Toggle starts a paused runner or pauses a running one, and reports the new state.
func (r *Runner) Toggle(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.pauseLocked()
		return false
	}
	r.startLocked(ctx)
	return true
}

// Advance simulates one day on demand, whether or not the timer is running.
func (r *Runner) Advance() GameState {
	return r.hotel.AdvanceDay()
}

// Reset pauses the simulation and restores the opening state.
func (r *Runner) Reset() (GameState, Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pauseLocked()
	return r.hotel.Reset()
}
