package game

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunnerForTest(t *testing.T) (*Runner, *Hotel) {
	t.Helper()
	h := newHotelForTest(NewRand(1))
	r := NewRunner(h, 5*time.Millisecond, log.New(io.Discard))
	t.Cleanup(r.Pause)
	return r, h
}

func TestRunner_TicksWhileRunning(t *testing.T) {
	r, h := newRunnerForTest(t)

	r.Start(context.Background())
	require.True(t, r.Running())
	assert.True(t, h.Snapshot().IsRunning)

	require.Eventually(t, func() bool { return h.Snapshot().Day >= 3 }, 2*time.Second, 5*time.Millisecond)
}

func TestRunner_PauseStopsTheTimer(t *testing.T) {
	r, h := newRunnerForTest(t)

	r.Start(context.Background())
	require.Eventually(t, func() bool { return h.Snapshot().Day >= 2 }, 2*time.Second, 5*time.Millisecond)

	r.Pause()
	day := h.Snapshot().Day
	assert.False(t, r.Running())
	assert.False(t, h.Snapshot().IsRunning)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, day, h.Snapshot().Day)
}

func TestRunner_StartTwiceIsNoop(t *testing.T) {
	r, _ := newRunnerForTest(t)
	ctx := context.Background()

	r.Start(ctx)
	r.Start(ctx)
	r.Pause()

	assert.False(t, r.Running())
}

func TestRunner_Toggle(t *testing.T) {
	r, h := newRunnerForTest(t)
	ctx := context.Background()

	assert.True(t, r.Toggle(ctx))
	assert.True(t, h.Snapshot().IsRunning)
	assert.False(t, r.Toggle(ctx))
	assert.False(t, h.Snapshot().IsRunning)
}

func TestRunner_ResetPauses(t *testing.T) {
	r, h := newRunnerForTest(t)

	r.Start(context.Background())
	require.Eventually(t, func() bool { return h.Snapshot().Day >= 2 }, 2*time.Second, 5*time.Millisecond)

	s, res := r.Reset()

	require.True(t, res.Applied)
	assert.False(t, r.Running())
	assert.False(t, s.IsRunning)
	assert.Equal(t, 1, s.Day)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, h.Snapshot().Day)
}

func TestRunner_AdvanceWhilePaused(t *testing.T) {
	r, h := newRunnerForTest(t)

	s := r.Advance()

	assert.Equal(t, 2, s.Day)
	assert.Equal(t, 2, h.Snapshot().Day)
	assert.False(t, r.Running())
}

func TestRunner_ContextCancelEndsLoop(t *testing.T) {
	r, h := newRunnerForTest(t)
	ctx, cancel := context.WithCancel(context.Background())

	r.Start(ctx)
	cancel()

	require.Eventually(t, func() bool { return !r.Running() }, 2*time.Second, time.Millisecond)
	assert.False(t, h.Snapshot().IsRunning)
	day := h.Snapshot().Day
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, day, h.Snapshot().Day)

	// The runner can be started again afterwards.
	r.Start(context.Background())
	assert.True(t, r.Running())
	assert.True(t, h.Snapshot().IsRunning)
}
