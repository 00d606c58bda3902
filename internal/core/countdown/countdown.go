// Package countdown implements the one-second countdown that drives the
// work and rest periods.
package countdown

import (
	"sync"
	"time"
)

// Config contains runtime options for the Timer.
type Config struct {
	// TickInterval is the tick period; production uses the 1s default,
	// tests shorten it.
	TickInterval time.Duration
	// OnTick publishes the updated remaining time after every tick.
	OnTick func(remaining time.Duration)
	// OnComplete fires exactly once per run when the countdown reaches zero.
	OnComplete func()
}

// Timer runs a single countdown from a duration to zero. Each Start or
// Resume owns one ticking goroutine through a dedicated stop channel, so a
// superseded run can never decrement or complete after it was torn down.
type Timer struct {
	mu         sync.Mutex
	options    Config
	startValue time.Duration
	remaining  time.Duration
	running    bool
	stopCh     chan struct{}
}

// New creates a Timer with the provided configuration.
func New(options Config) *Timer {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Timer{options: options}
}

// Start begins a fresh countdown from the given duration, replacing any
// active run. Negative durations count as zero.
func (timer *Timer) Start(duration time.Duration) {
	if duration < 0 {
		duration = 0
	}

	timer.mu.Lock()
	timer.stopLocked()
	timer.startValue = duration
	timer.remaining = duration
	timer.running = true
	stop := make(chan struct{})
	timer.stopCh = stop
	timer.mu.Unlock()

	go timer.run(stop)
}

// Pause stops ticking and preserves the remaining time. Idempotent.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	timer.stopLocked()
	timer.mu.Unlock()
}

// Resume continues ticking from the current remaining value. No-op while
// already running or when nothing remains.
func (timer *Timer) Resume() {
	timer.mu.Lock()
	if timer.running || timer.remaining <= 0 {
		timer.mu.Unlock()
		return
	}
	timer.running = true
	stop := make(chan struct{})
	timer.stopCh = stop
	timer.mu.Unlock()

	go timer.run(stop)
}

// Reset pauses the countdown and restores the duration passed to the last
// Start.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	timer.stopLocked()
	timer.remaining = timer.startValue
	timer.mu.Unlock()
}

// Remaining reports the time left on the countdown.
func (timer *Timer) Remaining() time.Duration {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.remaining
}

// Running reports whether the countdown is ticking.
func (timer *Timer) Running() bool {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.running
}

func (timer *Timer) stopLocked() {
	if timer.stopCh != nil {
		close(timer.stopCh)
		timer.stopCh = nil
	}
	timer.running = false
}

func (timer *Timer) run(stop chan struct{}) {
	ticker := time.NewTicker(timer.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if timer.tick(stop) {
				return
			}
		}
	}
}

// tick advances the countdown by one interval and reports whether this run
// is finished. Callbacks are invoked without holding the lock so they may
// call back into the timer.
func (timer *Timer) tick(stop chan struct{}) bool {
	timer.mu.Lock()
	if timer.stopCh != stop {
		// A Pause, Reset or newer Start superseded this run.
		timer.mu.Unlock()
		return true
	}

	timer.remaining -= timer.options.TickInterval
	if timer.remaining > 0 {
		remaining := timer.remaining
		timer.mu.Unlock()
		if timer.options.OnTick != nil {
			timer.options.OnTick(remaining)
		}
		return false
	}

	timer.remaining = 0
	timer.stopLocked()
	timer.mu.Unlock()

	if timer.options.OnTick != nil {
		timer.options.OnTick(0)
	}
	if timer.options.OnComplete != nil {
		timer.options.OnComplete()
	}
	return true
}
