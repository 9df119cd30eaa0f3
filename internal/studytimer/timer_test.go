package studytimer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/labboard/internal/studytimer"
)

func TestNew_RejectsNonPositive(t *testing.T) {
	_, err := studytimer.New(0)
	assert.ErrorIs(t, err, studytimer.ErrInvalidDuration)
}

func TestTimer_TicksOnlyWhileRunning(t *testing.T) {
	timer, err := studytimer.New(3 * time.Second)
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, timer.Tick(time.Second))
	assert.Equal(t, 1.0, timer.Progress())

	timer.Start()
	assert.Equal(t, 2*time.Second, timer.Tick(time.Second))
	assert.InDelta(t, 2.0/3.0, timer.Progress(), 1e-9)

	timer.Pause()
	assert.Equal(t, 2*time.Second, timer.Tick(time.Second))
	assert.False(t, timer.Completed())
}

func TestTimer_CompletesExactlyAtZero(t *testing.T) {
	timer, err := studytimer.New(2 * time.Second)
	require.NoError(t, err)
	timer.Start()

	timer.Tick(time.Second)
	assert.False(t, timer.Completed())

	assert.Equal(t, time.Duration(0), timer.Tick(5*time.Second))
	assert.True(t, timer.Completed())
	assert.False(t, timer.Running())
	assert.Equal(t, 0.0, timer.Progress())

	timer.Start()
	assert.False(t, timer.Running(), "a completed timer does not restart")
}

func TestTimer_Reset(t *testing.T) {
	timer, err := studytimer.New(time.Minute)
	require.NoError(t, err)
	timer.Start()
	timer.Tick(time.Minute)
	require.True(t, timer.Completed())

	timer.Reset(0)
	assert.Equal(t, time.Minute, timer.Remaining())
	assert.False(t, timer.Completed())

	timer.Reset(90 * time.Minute)
	assert.Equal(t, 90*time.Minute, timer.Total())
	assert.Equal(t, "90:00", timer.String())
}

func TestTimer_String(t *testing.T) {
	timer, err := studytimer.New(25 * time.Minute)
	require.NoError(t, err)
	timer.Start()
	timer.Tick(90 * time.Second)

	assert.Equal(t, "23:30", timer.String())
}

func TestTimer_RunUntilCompleted(t *testing.T) {
	timer, err := studytimer.New(30 * time.Millisecond)
	require.NoError(t, err)

	var ticks []time.Duration
	err = timer.Run(context.Background(), 10*time.Millisecond, func(left time.Duration) {
		ticks = append(ticks, left)
	})
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{20 * time.Millisecond, 10 * time.Millisecond, 0}, ticks)
	assert.True(t, timer.Completed())
}

func TestTimer_RunStopsOnCancel(t *testing.T) {
	timer, err := studytimer.New(time.Hour)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err = timer.Run(ctx, 5*time.Millisecond, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, timer.Running())
	assert.Less(t, timer.Remaining(), time.Hour)
}
