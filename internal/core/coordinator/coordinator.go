// Package coordinator implements the Idle -> Work -> Rest state machine
// that ties the countdown, reminder schedule, statistics and transition
// cues together.
package coordinator

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"pomobar/internal/core/countdown"
	"pomobar/internal/core/model"
	"pomobar/internal/core/reminder"
)

// SoundPlayer plays a transition cue. Playback is fire-and-forget; it can
// never fail the transition it is attached to.
type SoundPlayer interface {
	Play(kind model.CueKind)
}

// Notifier dispatches an OS notification for a transition cue.
type Notifier interface {
	Notify(kind model.CueKind)
}

// SessionRecorder tracks work session boundaries.
type SessionRecorder interface {
	StartSession()
	CompleteSession()
}

// SettingsSource supplies the settings read fresh at every countdown start,
// so a mid-cycle change takes effect on the next Work or Rest entry.
type SettingsSource interface {
	Current() model.Settings
}

// Config wires the coordinator's collaborators. The coordinator holds
// references only; each collaborator stays owned by its constructor site.
type Config struct {
	Settings SettingsSource
	Stats    SessionRecorder
	Sound    SoundPlayer
	Notifier Notifier

	// TickInterval and ReminderPeriod shorten the background timers in
	// tests; zero values mean the production defaults (1s, 30m).
	TickInterval   time.Duration
	ReminderPeriod time.Duration
}

// Coordinator drives the pomodoro cycle. It owns the countdown timer and
// the idle-reminder schedule as explicit cancellable handles; exactly one of
// the two is active at any time.
type Coordinator struct {
	mu       sync.Mutex
	state    model.PomodoroState
	config   Config
	timer    *countdown.Timer
	reminder *reminder.Scheduler
	events   []chan Event
	logger   zerolog.Logger
}

// New creates a Coordinator in the Idle state. Call Start to arm the idle
// reminder schedule and announce the initial state.
func New(config Config, logger zerolog.Logger) *Coordinator {
	coordinator := &Coordinator{
		state:  model.StateIdle,
		config: config,
		logger: logger,
	}

	coordinator.timer = countdown.New(countdown.Config{
		TickInterval: config.TickInterval,
		OnTick:       coordinator.handleTick,
		OnComplete:   coordinator.handleCompletion,
	})

	coordinator.reminder = reminder.New(reminder.Config{
		Period: config.ReminderPeriod,
		ActiveHours: func() (int, int) {
			settings := config.Settings.Current()
			return settings.ActiveHoursStart, settings.ActiveHoursEnd
		},
		Fire: coordinator.fireIdleReminder,
	}, logger)

	return coordinator
}

// Start arms the initial Idle state's reminder schedule and announces the
// state to subscribers.
func (coordinator *Coordinator) Start() {
	coordinator.mu.Lock()
	if coordinator.state == model.StateIdle {
		coordinator.reminder.Start()
	}
	state := coordinator.state
	coordinator.mu.Unlock()

	coordinator.emit(Event{Type: EventStateChange, State: state, At: time.Now()})
}

// State returns the current cycle state.
func (coordinator *Coordinator) State() model.PomodoroState {
	coordinator.mu.Lock()
	defer coordinator.mu.Unlock()
	return coordinator.state
}

// Remaining reports the time left on the active countdown.
func (coordinator *Coordinator) Remaining() time.Duration {
	return coordinator.timer.Remaining()
}

// Subscribe registers a new observer channel.
func (coordinator *Coordinator) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	coordinator.mu.Lock()
	coordinator.events = append(coordinator.events, ch)
	coordinator.mu.Unlock()
	return ch
}

// Advance moves the cycle exactly one step. The user's menu action and the
// countdown completion both land here, so the two trigger paths are
// indistinguishable in effect. Each transition tears down the previous
// state's background activity before starting the next one's.
func (coordinator *Coordinator) Advance() {
	coordinator.mu.Lock()
	next := coordinator.state.Next()
	coordinator.state = next
	settings := coordinator.config.Settings.Current()

	switch next {
	case model.StateWork:
		coordinator.reminder.Stop()
		coordinator.config.Stats.StartSession()
		coordinator.timer.Start(settings.WorkDuration())
	case model.StateRest:
		coordinator.config.Stats.CompleteSession()
		coordinator.timer.Start(settings.RestDuration())
	case model.StateIdle:
		coordinator.timer.Pause()
		coordinator.reminder.Start()
	}
	remaining := coordinator.timer.Remaining()
	coordinator.mu.Unlock()

	switch next {
	case model.StateRest:
		coordinator.fireCue(model.CueWorkComplete)
	case model.StateIdle:
		coordinator.fireCue(model.CueRestComplete)
	}

	coordinator.logger.Info().Str("state", string(next)).Msg("state change")
	coordinator.emit(Event{
		Type:      EventStateChange,
		State:     next,
		Remaining: remaining,
		At:        time.Now(),
	})
}

// Shutdown finalizes an in-progress work session, tears down both background
// timers and closes observer channels. Called once on process exit, before
// the UI stops.
func (coordinator *Coordinator) Shutdown() {
	coordinator.mu.Lock()
	if coordinator.state == model.StateWork {
		coordinator.config.Stats.CompleteSession()
	}
	coordinator.timer.Pause()
	coordinator.reminder.Stop()
	events := coordinator.events
	coordinator.events = nil
	coordinator.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (coordinator *Coordinator) handleTick(remaining time.Duration) {
	coordinator.mu.Lock()
	state := coordinator.state
	coordinator.mu.Unlock()

	coordinator.emit(Event{
		Type:      EventTick,
		State:     state,
		Remaining: remaining,
		At:        time.Now(),
	})
}

func (coordinator *Coordinator) handleCompletion() {
	coordinator.Advance()
}

func (coordinator *Coordinator) fireIdleReminder() {
	coordinator.fireCue(model.CueIdleReminder)
}

// fireCue dispatches sound and notification side effects. Failures are the
// collaborators' problem; the transition never waits on them.
func (coordinator *Coordinator) fireCue(kind model.CueKind) {
	if coordinator.config.Sound != nil {
		coordinator.config.Sound.Play(kind)
	}
	if coordinator.config.Notifier != nil {
		coordinator.config.Notifier.Notify(kind)
	}
}

func (coordinator *Coordinator) emit(event Event) {
	coordinator.mu.Lock()
	events := append([]chan Event(nil), coordinator.events...)
	coordinator.mu.Unlock()

	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
