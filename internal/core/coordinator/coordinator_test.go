package coordinator

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomobar/internal/core/model"
)

type stubSettings struct {
	mu      sync.Mutex
	current model.Settings
}

func (stub *stubSettings) Current() model.Settings {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	return stub.current
}

func (stub *stubSettings) set(settings model.Settings) {
	stub.mu.Lock()
	stub.current = settings
	stub.mu.Unlock()
}

type stubRecorder struct {
	mu        sync.Mutex
	starts    int
	completes int
}

func (stub *stubRecorder) StartSession() {
	stub.mu.Lock()
	stub.starts++
	stub.mu.Unlock()
}

func (stub *stubRecorder) CompleteSession() {
	stub.mu.Lock()
	stub.completes++
	stub.mu.Unlock()
}

func (stub *stubRecorder) counts() (int, int) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	return stub.starts, stub.completes
}

type stubCues struct {
	mu       sync.Mutex
	played   []model.CueKind
	notified []model.CueKind
}

func (stub *stubCues) Play(kind model.CueKind) {
	stub.mu.Lock()
	stub.played = append(stub.played, kind)
	stub.mu.Unlock()
}

func (stub *stubCues) Notify(kind model.CueKind) {
	stub.mu.Lock()
	stub.notified = append(stub.notified, kind)
	stub.mu.Unlock()
}

func (stub *stubCues) all() ([]model.CueKind, []model.CueKind) {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	return append([]model.CueKind(nil), stub.played...), append([]model.CueKind(nil), stub.notified...)
}

func newTestCoordinator(t *testing.T) (*Coordinator, *stubSettings, *stubRecorder, *stubCues) {
	t.Helper()
	settings := &stubSettings{current: model.DefaultSettings()}
	recorder := &stubRecorder{}
	cues := &stubCues{}

	// Hour-long background intervals keep the timers from firing on their
	// own during transition tests.
	pomodoro := New(Config{
		Settings:       settings,
		Stats:          recorder,
		Sound:          cues,
		Notifier:       cues,
		TickInterval:   time.Hour,
		ReminderPeriod: time.Hour,
	}, zerolog.Nop())
	t.Cleanup(pomodoro.Shutdown)
	return pomodoro, settings, recorder, cues
}

func TestAdvanceFollowsTransitionTable(t *testing.T) {
	pomodoro, _, recorder, cues := newTestCoordinator(t)
	pomodoro.Start()

	require.Equal(t, model.StateIdle, pomodoro.State())
	assert.True(t, pomodoro.reminder.Active())
	assert.False(t, pomodoro.timer.Running())

	// Idle -> Work: reminder torn down, countdown started, session opened.
	pomodoro.Advance()
	assert.Equal(t, model.StateWork, pomodoro.State())
	assert.False(t, pomodoro.reminder.Active())
	assert.True(t, pomodoro.timer.Running())
	starts, completes := recorder.counts()
	assert.Equal(t, 1, starts)
	assert.Equal(t, 0, completes)
	played, _ := cues.all()
	assert.Empty(t, played)

	// Work -> Rest: session finalized, work-complete cue fired.
	pomodoro.Advance()
	assert.Equal(t, model.StateRest, pomodoro.State())
	assert.False(t, pomodoro.reminder.Active())
	assert.True(t, pomodoro.timer.Running())
	_, completes = recorder.counts()
	assert.Equal(t, 1, completes)
	played, notified := cues.all()
	assert.Equal(t, []model.CueKind{model.CueWorkComplete}, played)
	assert.Equal(t, []model.CueKind{model.CueWorkComplete}, notified)

	// Rest -> Idle: countdown stopped, reminder re-armed, rest cue fired.
	pomodoro.Advance()
	assert.Equal(t, model.StateIdle, pomodoro.State())
	assert.True(t, pomodoro.reminder.Active())
	assert.False(t, pomodoro.timer.Running())
	played, notified = cues.all()
	assert.Equal(t, []model.CueKind{model.CueWorkComplete, model.CueRestComplete}, played)
	assert.Equal(t, []model.CueKind{model.CueWorkComplete, model.CueRestComplete}, notified)
}

func TestCyclicClosure(t *testing.T) {
	pomodoro, _, _, _ := newTestCoordinator(t)
	pomodoro.Start()

	for _, start := range []model.PomodoroState{model.StateIdle, model.StateWork, model.StateRest} {
		for pomodoro.State() != start {
			pomodoro.Advance()
		}
		pomodoro.Advance()
		pomodoro.Advance()
		pomodoro.Advance()
		assert.Equal(t, start, pomodoro.State())
	}
}

func TestExactlyOneBackgroundActivity(t *testing.T) {
	pomodoro, _, _, _ := newTestCoordinator(t)
	pomodoro.Start()

	for i := 0; i < 6; i++ {
		countdownActive := pomodoro.timer.Running()
		reminderActive := pomodoro.reminder.Active()
		assert.NotEqual(t, countdownActive, reminderActive,
			"state %s must run exactly one background activity", pomodoro.State())
		pomodoro.Advance()
	}
}

func TestCountdownStartsFromFreshSettings(t *testing.T) {
	pomodoro, settings, _, _ := newTestCoordinator(t)
	pomodoro.Start()

	pomodoro.Advance()
	assert.Equal(t, 25*time.Minute, pomodoro.Remaining())

	// A mid-cycle change applies on the next countdown start, never
	// retroactively.
	settings.set(model.Settings{
		WorkMinutes: 50, RestMinutes: 10, ActiveHoursStart: 9, ActiveHoursEnd: 17,
	})
	assert.Equal(t, 25*time.Minute, pomodoro.Remaining())

	pomodoro.Advance()
	assert.Equal(t, 10*time.Minute, pomodoro.Remaining())

	pomodoro.Advance()
	pomodoro.Advance()
	assert.Equal(t, 50*time.Minute, pomodoro.Remaining())
}

func TestCountdownCompletionAdvances(t *testing.T) {
	settings := &stubSettings{current: model.DefaultSettings()}
	recorder := &stubRecorder{}
	cues := &stubCues{}

	tick := 5 * time.Millisecond
	pomodoro := New(Config{
		Settings:       settings,
		Stats:          recorder,
		Sound:          cues,
		Notifier:       cues,
		TickInterval:   tick,
		ReminderPeriod: time.Hour,
	}, zerolog.Nop())
	t.Cleanup(pomodoro.Shutdown)
	pomodoro.Start()

	pomodoro.Advance()
	require.Equal(t, model.StateWork, pomodoro.State())

	// Shorten the running work countdown; its completion must land on the
	// same transition as a user advance.
	pomodoro.timer.Start(3 * tick)

	require.Eventually(t, func() bool {
		return pomodoro.State() == model.StateRest
	}, time.Second, time.Millisecond)

	_, completes := recorder.counts()
	assert.Equal(t, 1, completes)
	played, _ := cues.all()
	assert.Equal(t, []model.CueKind{model.CueWorkComplete}, played)
}

func TestShutdownFinalizesOpenSession(t *testing.T) {
	settings := &stubSettings{current: model.DefaultSettings()}
	recorder := &stubRecorder{}
	pomodoro := New(Config{
		Settings:       settings,
		Stats:          recorder,
		TickInterval:   time.Hour,
		ReminderPeriod: time.Hour,
	}, zerolog.Nop())
	pomodoro.Start()

	pomodoro.Advance()
	require.Equal(t, model.StateWork, pomodoro.State())

	pomodoro.Shutdown()
	_, completes := recorder.counts()
	assert.Equal(t, 1, completes)
	assert.False(t, pomodoro.timer.Running())
	assert.False(t, pomodoro.reminder.Active())
}

func TestShutdownOutsideWorkLeavesSessionsAlone(t *testing.T) {
	settings := &stubSettings{current: model.DefaultSettings()}
	recorder := &stubRecorder{}
	pomodoro := New(Config{
		Settings:       settings,
		Stats:          recorder,
		TickInterval:   time.Hour,
		ReminderPeriod: time.Hour,
	}, zerolog.Nop())
	pomodoro.Start()

	pomodoro.Shutdown()
	starts, completes := recorder.counts()
	assert.Equal(t, 0, starts)
	assert.Equal(t, 0, completes)
}

func TestSubscribersSeeStateChanges(t *testing.T) {
	pomodoro, _, _, _ := newTestCoordinator(t)
	events := pomodoro.Subscribe(8)
	pomodoro.Start()

	pomodoro.Advance()
	pomodoro.Advance()

	var states []model.PomodoroState
	timeout := time.After(time.Second)
	for len(states) < 3 {
		select {
		case event := <-events:
			if event.Type == EventStateChange {
				states = append(states, event.State)
			}
		case <-timeout:
			t.Fatal("timed out waiting for state change events")
		}
	}
	assert.Equal(t, []model.PomodoroState{model.StateIdle, model.StateWork, model.StateRest}, states)
}

func TestIdleReminderFiresCue(t *testing.T) {
	settings := &stubSettings{current: model.DefaultSettings()}
	cues := &stubCues{}
	pomodoro := New(Config{
		Settings:       settings,
		Stats:          &stubRecorder{},
		Sound:          cues,
		Notifier:       cues,
		TickInterval:   time.Hour,
		ReminderPeriod: time.Hour,
	}, zerolog.Nop())
	t.Cleanup(pomodoro.Shutdown)

	pomodoro.fireIdleReminder()

	played, notified := cues.all()
	assert.Equal(t, []model.CueKind{model.CueIdleReminder}, played)
	assert.Equal(t, []model.CueKind{model.CueIdleReminder}, notified)
}
