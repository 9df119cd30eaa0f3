package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

const (
	BoardPollInterval    = 5 * time.Second
	PresencePollInterval = 60 * time.Second
)

// Snapshot is a full copy of the store at one point in time.
type Snapshot struct {
	Notes       []entity.Note
	Connections []entity.Connection
	// Members is left as is on the board when nil.
	Members []entity.Member
}

// Refresh fetches a full snapshot and replaces the board state. On failure
// the board is left unchanged and the error is recorded.
func (b *Board) Refresh(ctx context.Context) error {
	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	var s Snapshot
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		notes, err := b.store.ListNotes(egCtx)
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}
		s.Notes = notes
		return nil
	})
	eg.Go(func() error {
		conns, err := b.store.ListConnections(egCtx)
		if err != nil {
			return fmt.Errorf("list connections: %w", err)
		}
		s.Connections = conns
		return nil
	})
	if b.memberSource != nil {
		eg.Go(func() error {
			members, err := b.memberSource.ListMembers(egCtx)
			if err != nil {
				return fmt.Errorf("list members: %w", err)
			}
			s.Members = members
			if s.Members == nil {
				s.Members = []entity.Member{}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		err = fmt.Errorf("refresh board: %w", err)
		b.setErr(err)
		return err
	}

	b.Replace(s)
	return nil
}

// Replace swaps in a snapshot. Notes being dragged or edited keep their local
// copy, and so do notes whose incoming version is older than the version the
// store already acknowledged to this board.
func (b *Board) Replace(s Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	local := make(map[string]entity.Note, len(b.notes))
	for _, n := range b.notes {
		local[n.ID] = n
	}

	notes := make([]entity.Note, 0, len(s.Notes))
	present := make(map[string]struct{}, len(s.Notes))
	for _, in := range s.Notes {
		present[in.ID] = struct{}{}

		cur, ok := local[in.ID]
		if ok && b.modes[in.ID] != ModeIdle {
			notes = append(notes, cur)
			continue
		}
		if acked, seen := b.acked[in.ID]; seen {
			if ok && in.Version < acked {
				slogx.Debug(context.Background(), "discard stale note",
					slogx.NoteID(in.ID),
					slog.Int64("version", in.Version),
					slog.Int64("acked", acked),
				)
				notes = append(notes, cur)
				continue
			}
			delete(b.acked, in.ID)
		}
		notes = append(notes, in.Clone())
	}

	for id := range b.modes {
		if _, ok := present[id]; !ok {
			b.clearInteractionLocked(id)
		}
	}
	for id := range b.acked {
		if _, ok := present[id]; !ok {
			delete(b.acked, id)
		}
	}
	if _, ok := present[b.connectingFrom]; !ok {
		b.connectingFrom = ""
	}

	b.notes = notes
	b.connections = slices.Clone(s.Connections)
	if s.Members != nil {
		b.members = slices.Clone(s.Members)
	}
}

// Poller runs fn once right away and then on every tick of a single timer
// until ctx is done. Failures are logged and do not stop the loop.
type Poller struct {
	name     string
	interval time.Duration
	fn       func(context.Context) error
}

func NewPoller(name string, interval time.Duration, fn func(context.Context) error) *Poller {
	return &Poller{name: name, interval: interval, fn: fn}
}

func (p *Poller) Run(ctx context.Context) error {
	if p.interval <= 0 {
		return fmt.Errorf("poller %s: interval must be positive", p.name)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	if err := p.fn(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slogx.Warn(ctx, "poll failed", slog.String("poller", p.name), slogx.Err(err))
	}
}
