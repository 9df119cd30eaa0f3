package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/internal/repository/postgres/converter"
	"github.com/evgeniy-krivenko/labboard/internal/repository/postgres/gen"
	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

func (r *Repo) ListNotes(ctx context.Context) ([]entity.Note, error) {
	rows, err := r.q.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %v", err)
	}

	return converter.ConvertNotesToEntity(rows), nil
}

func (r *Repo) GetNote(ctx context.Context, id string) (entity.Note, error) {
	row, err := r.q.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("get note: %v", err)
	}

	return converter.ConvertNoteToEntity(row), nil
}

func (r *Repo) CreateNote(ctx context.Context, note entity.Note) (entity.Note, error) {
	if note.Version == 0 {
		note.Version = 1
	}
	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = time.Now().UTC()
	}
	note = note.Clone()

	row, err := r.q.CreateNote(ctx, gen.CreateNoteParams{
		ID:          note.ID,
		Content:     note.Content,
		Tags:        note.Tags,
		Color:       string(note.Color),
		PosX:        note.Position.X,
		PosY:        note.Position.Y,
		UpdatedAt:   converter.ConvertTimeToTimestampz(note.UpdatedAt),
		AssigneeIds: nonNil(note.AssigneeIDs),
		Version:     note.Version,
	})
	if err != nil {
		return entity.Note{}, fmt.Errorf("create note: %v", err)
	}

	slogx.Debug(ctx, "note inserted", slogx.NoteID(row.ID))

	return converter.ConvertNoteToEntity(row), nil
}

func (r *Repo) UpdateNote(ctx context.Context, note entity.Note) (entity.Note, error) {
	note = note.Clone()

	row, err := r.q.UpdateNote(ctx, gen.UpdateNoteParams{
		ID:          note.ID,
		Content:     note.Content,
		Tags:        note.Tags,
		Color:       string(note.Color),
		PosX:        note.Position.X,
		PosY:        note.Position.Y,
		UpdatedAt:   converter.ConvertTimeToTimestampz(note.UpdatedAt),
		AssigneeIds: nonNil(note.AssigneeIDs),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, fmt.Errorf("update note: %v", err)
	}

	return converter.ConvertNoteToEntity(row), nil
}

func (r *Repo) DeleteNote(ctx context.Context, id string) error {
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := r.q.DeleteNote(ctx, id)
		if err != nil {
			return fmt.Errorf("delete note: %v", err)
		}
		if n == 0 {
			return entity.ErrNoteNotFound
		}

		if err := r.q.DeleteNoteConnections(ctx, id); err != nil {
			return fmt.Errorf("delete note connections: %v", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

func (r *Repo) ListConnections(ctx context.Context) ([]entity.Connection, error) {
	rows, err := r.q.ListConnections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list connections: %v", err)
	}

	return converter.ConvertConnectionsToEntity(rows), nil
}

func (r *Repo) CreateConnection(ctx context.Context, conn entity.Connection) (entity.Connection, bool, error) {
	row, err := r.q.CreateConnection(ctx, gen.CreateConnectionParams{
		ID:     conn.ID,
		FromID: conn.FromID,
		ToID:   conn.ToID,
	})
	if err == nil {
		return converter.ConvertConnectionToEntity(row), true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return entity.Connection{}, false, fmt.Errorf("create connection: %v", err)
	}

	// The insert hit the pair index.
	row, err = r.q.GetConnectionByPair(ctx, gen.GetConnectionByPairParams{A: conn.FromID, B: conn.ToID})
	if err != nil {
		return entity.Connection{}, false, fmt.Errorf("get connection by pair: %v", err)
	}

	return converter.ConvertConnectionToEntity(row), false, nil
}

func (r *Repo) DeleteConnection(ctx context.Context, id string) error {
	n, err := r.q.DeleteConnection(ctx, id)
	if err != nil {
		return fmt.Errorf("delete connection: %v", err)
	}
	if n == 0 {
		return entity.ErrConnectionNotFound
	}

	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
