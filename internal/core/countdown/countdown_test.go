package countdown

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInterval = 5 * time.Millisecond

func TestCompletionFiresExactlyOnce(t *testing.T) {
	var completions atomic.Int32
	timer := New(Config{
		TickInterval: testInterval,
		OnComplete:   func() { completions.Add(1) },
	})

	timer.Start(10 * testInterval)

	require.Eventually(t, func() bool {
		return completions.Load() == 1
	}, time.Second, time.Millisecond)

	assert.Equal(t, time.Duration(0), timer.Remaining())
	assert.False(t, timer.Running())

	// No second completion after the run ended.
	time.Sleep(5 * testInterval)
	assert.Equal(t, int32(1), completions.Load())
}

func TestTicksPublishRemaining(t *testing.T) {
	var last atomic.Int64
	timer := New(Config{
		TickInterval: testInterval,
		OnTick:       func(remaining time.Duration) { last.Store(int64(remaining)) },
	})

	timer.Start(time.Hour)

	require.Eventually(t, func() bool {
		published := time.Duration(last.Load())
		return published > 0 && published < time.Hour
	}, time.Second, time.Millisecond)
	timer.Pause()
}

func TestPauseResumePreservesRemaining(t *testing.T) {
	timer := New(Config{TickInterval: testInterval})
	timer.Start(time.Hour)

	require.Eventually(t, func() bool {
		return timer.Remaining() < time.Hour
	}, time.Second, time.Millisecond)

	timer.Pause()
	assert.False(t, timer.Running())
	frozen := timer.Remaining()

	// Pausing stops the decrement entirely.
	time.Sleep(5 * testInterval)
	assert.Equal(t, frozen, timer.Remaining())

	// Pause is idempotent.
	timer.Pause()
	assert.Equal(t, frozen, timer.Remaining())

	timer.Resume()
	assert.True(t, timer.Running())
	require.Eventually(t, func() bool {
		return timer.Remaining() < frozen
	}, time.Second, time.Millisecond)
	timer.Pause()
}

func TestResumeNoOpWhileRunningOrDrained(t *testing.T) {
	timer := New(Config{TickInterval: testInterval})
	timer.Start(time.Hour)
	timer.Resume()
	assert.True(t, timer.Running())
	timer.Pause()

	var completions atomic.Int32
	drained := New(Config{
		TickInterval: testInterval,
		OnComplete:   func() { completions.Add(1) },
	})
	drained.Start(testInterval)
	require.Eventually(t, func() bool {
		return completions.Load() == 1
	}, time.Second, time.Millisecond)

	drained.Resume()
	assert.False(t, drained.Running())
	time.Sleep(3 * testInterval)
	assert.Equal(t, int32(1), completions.Load())
}

func TestResetRestoresStartDuration(t *testing.T) {
	timer := New(Config{TickInterval: testInterval})
	timer.Start(time.Hour)

	require.Eventually(t, func() bool {
		return timer.Remaining() < time.Hour
	}, time.Second, time.Millisecond)

	timer.Reset()
	assert.False(t, timer.Running())
	assert.Equal(t, time.Hour, timer.Remaining())
}

func TestStartClampsNegativeDuration(t *testing.T) {
	var completions atomic.Int32
	timer := New(Config{
		TickInterval: testInterval,
		OnComplete:   func() { completions.Add(1) },
	})

	timer.Start(-time.Minute)
	require.Eventually(t, func() bool {
		return completions.Load() == 1
	}, time.Second, time.Millisecond)
	assert.Equal(t, time.Duration(0), timer.Remaining())
}

func TestRestartReplacesActiveRun(t *testing.T) {
	var completions atomic.Int32
	timer := New(Config{
		TickInterval: testInterval,
		OnComplete:   func() { completions.Add(1) },
	})

	timer.Start(time.Hour)
	timer.Start(3 * testInterval)

	require.Eventually(t, func() bool {
		return completions.Load() == 1
	}, time.Second, time.Millisecond)

	// Only the second run may complete; the first was torn down.
	time.Sleep(5 * testInterval)
	assert.Equal(t, int32(1), completions.Load())
}
