// Package reminder implements the recurring idle-state nudge.
package reminder

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config contains runtime options for the Scheduler.
type Config struct {
	// Period between reminder checks; production uses the 30m default,
	// tests shorten it.
	Period time.Duration
	// ActiveHours supplies the current half-open [start, end) hour window,
	// read fresh on every check.
	ActiveHours func() (start, end int)
	// Fire dispatches the reminder side effects.
	Fire func()
	// Clock supplies wall-clock time; nil means time.Now.
	Clock func() time.Time
}

// Scheduler fires a periodic reminder while the pomodoro cycle sits idle.
// Stop tears the schedule down entirely; the next Start arms a fresh one.
type Scheduler struct {
	mu      sync.Mutex
	options Config
	stopCh  chan struct{}
	logger  zerolog.Logger
}

// New creates a Scheduler with the provided configuration.
func New(options Config, logger zerolog.Logger) *Scheduler {
	if options.Period <= 0 {
		options.Period = 30 * time.Minute
	}
	if options.Clock == nil {
		options.Clock = time.Now
	}
	return &Scheduler{options: options, logger: logger}
}

// Start arms the reminder schedule. No-op while one is already armed.
func (scheduler *Scheduler) Start() {
	scheduler.mu.Lock()
	if scheduler.stopCh != nil {
		scheduler.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	scheduler.stopCh = stop
	scheduler.mu.Unlock()

	go scheduler.run(stop)
}

// Stop tears the schedule down. Idempotent.
func (scheduler *Scheduler) Stop() {
	scheduler.mu.Lock()
	if scheduler.stopCh != nil {
		close(scheduler.stopCh)
		scheduler.stopCh = nil
	}
	scheduler.mu.Unlock()
}

// Active reports whether a schedule is armed.
func (scheduler *Scheduler) Active() bool {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.stopCh != nil
}

func (scheduler *Scheduler) run(stop chan struct{}) {
	ticker := time.NewTicker(scheduler.options.Period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			scheduler.check(stop)
		}
	}
}

// check fires the reminder when the current hour falls inside the active
// window. A failed check does nothing; the next one is a full period later.
func (scheduler *Scheduler) check(stop chan struct{}) {
	scheduler.mu.Lock()
	armed := scheduler.stopCh == stop
	scheduler.mu.Unlock()
	if !armed {
		return
	}

	start, end := scheduler.options.ActiveHours()
	hour := scheduler.options.Clock().Hour()
	if hour < start || hour >= end {
		return
	}

	scheduler.logger.Debug().Int("hour", hour).Msg("idle reminder fired")
	if scheduler.options.Fire != nil {
		scheduler.options.Fire()
	}
}
