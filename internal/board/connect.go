package board

import (
	"context"
	"errors"
	"slices"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
)

// BeginConnect makes id the source of a new connection. Dragging and editing
// are refused until the connection is completed or cancelled.
func (b *Board) BeginConnect(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.noteIndex(id) < 0 {
		return entity.ErrNoteNotFound
	}
	b.connectingFrom = id
	return nil
}

func (b *Board) CancelConnect() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.connectingFrom = ""
}

// CompleteConnect connects the pending source with target and always leaves
// connect mode. It does nothing without a source, for the source itself, or
// for a pair that is already connected. The bool reports whether a connection
// was added to the board.
func (b *Board) CompleteConnect(ctx context.Context, target string) (entity.Connection, bool, error) {
	b.mu.Lock()
	from := b.connectingFrom
	b.connectingFrom = ""
	if from == "" || from == target {
		b.mu.Unlock()
		return entity.Connection{}, false, nil
	}
	if i := slices.IndexFunc(b.connections, func(c entity.Connection) bool { return c.Joins(from, target) }); i >= 0 {
		existing := b.connections[i]
		b.mu.Unlock()
		return existing, false, nil
	}
	b.mu.Unlock()

	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	conn, err := b.store.CreateConnection(ctx, from, target)
	if err != nil {
		if errors.Is(err, entity.ErrSelfConnection) {
			return entity.Connection{}, false, nil
		}
		b.setErr(err)
		return entity.Connection{}, false, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if slices.ContainsFunc(b.connections, func(c entity.Connection) bool { return c.ID == conn.ID }) {
		return conn, false, nil
	}
	b.connections = append(b.connections, conn)
	return conn, true, nil
}

func (b *Board) DeleteConnection(ctx context.Context, id string) error {
	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	if err := b.store.DeleteConnection(ctx, id); err != nil {
		b.setErr(err)
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.connections = slices.DeleteFunc(b.connections, func(c entity.Connection) bool { return c.ID == id })
	return nil
}
