package board_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/labboard/internal/board"
)

func TestPoller_RunsImmediatelyAndOnTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	p := board.NewPoller("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("boom")
	})

	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
}

func TestPoller_RejectsNonPositiveInterval(t *testing.T) {
	p := board.NewPoller("bad", 0, func(context.Context) error { return nil })
	assert.Error(t, p.Run(context.Background()))
}

func TestBoard_RefreshPicksUpRemoteChanges(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a, err := f.notes.CreateNote(ctx, newDraft("remote a"))
	require.NoError(t, err)
	b, err := f.notes.CreateNote(ctx, newDraft("remote b"))
	require.NoError(t, err)
	_, err = f.notes.CreateConnection(ctx, a.ID, b.ID)
	require.NoError(t, err)

	require.NoError(t, f.board.Refresh(ctx))
	assert.Len(t, f.board.Notes(), 2)
	assert.Len(t, f.board.Connections(), 1)
	assert.Len(t, f.board.Paths(), 1)

	require.NoError(t, f.notes.DeleteNote(ctx, a.ID))
	require.NoError(t, f.board.Refresh(ctx))
	assert.Len(t, f.board.Notes(), 1)
	assert.Empty(t, f.board.Connections())
}
