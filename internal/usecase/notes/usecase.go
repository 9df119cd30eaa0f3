package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

type notesRepository interface {
	ListNotes(ctx context.Context) ([]entity.Note, error)
	GetNote(ctx context.Context, id string) (entity.Note, error)
	CreateNote(ctx context.Context, note entity.Note) (entity.Note, error)
	// UpdateNote stores the note with an incremented version.
	UpdateNote(ctx context.Context, note entity.Note) (entity.Note, error)
	// DeleteNote removes the note and every incident connection in one unit.
	DeleteNote(ctx context.Context, id string) error

	ListConnections(ctx context.Context) ([]entity.Connection, error)
	// CreateConnection returns the existing connection and false when the
	// unordered pair is already connected.
	CreateConnection(ctx context.Context, conn entity.Connection) (entity.Connection, bool, error)
	DeleteConnection(ctx context.Context, id string) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo notesRepository `option:"mandatory" validate:"required"`

	now func() time.Time
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	if opts.now == nil {
		opts.now = time.Now
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) ListNotes(ctx context.Context) ([]entity.Note, error) {
	notes, err := u.repo.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase list notes: %w", err)
	}

	return notes, nil
}

func (u *Usecase) CreateNote(ctx context.Context, draft entity.NoteDraft) (entity.Note, error) {
	id, err := gonanoid.New()
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase generate note id: %w", err)
	}

	note := draft.WithID(id)
	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = u.now().UTC()
	}
	note.Version = 1

	created, err := u.repo.CreateNote(ctx, note)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	slogx.Info(ctx, "success to create note", slogx.NoteID(created.ID))
	return created, nil
}

// UpdateNote replaces the stored note with the same id. A payload equal to the
// stored note is a no-op that returns the stored copy.
func (u *Usecase) UpdateNote(ctx context.Context, note entity.Note) (entity.Note, error) {
	if strings.TrimSpace(note.ID) == "" {
		return entity.Note{}, fmt.Errorf("usecase update note: %w: empty id", entity.ErrInvalidNote)
	}

	note.Tags = entity.NormalizeTags(note.Tags)
	note.AssigneeIDs = entity.NormalizeTags(note.AssigneeIDs)
	note.Color = entity.ParseColor(string(note.Color))

	stored, err := u.repo.GetNote(ctx, note.ID)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase update note: %w", err)
	}

	if stored.SameContent(note) {
		return stored, nil
	}

	if note.UpdatedAt.IsZero() || !note.UpdatedAt.After(stored.UpdatedAt) {
		note.UpdatedAt = u.now().UTC()
	}

	updated, err := u.repo.UpdateNote(ctx, note)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase update note: %w", err)
	}

	slogx.Debug(ctx, "success to update note", slogx.NoteID(updated.ID))
	return updated, nil
}

func (u *Usecase) DeleteNote(ctx context.Context, id string) error {
	if err := u.repo.DeleteNote(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNoteNotFound) {
			return nil
		}
		return fmt.Errorf("usecase delete note: %w", err)
	}

	slogx.Info(ctx, "success to delete note", slogx.NoteID(id))
	return nil
}

func (u *Usecase) ListConnections(ctx context.Context) ([]entity.Connection, error) {
	conns, err := u.repo.ListConnections(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase list connections: %w", err)
	}

	return conns, nil
}

func (u *Usecase) CreateConnection(ctx context.Context, fromID, toID string) (entity.Connection, error) {
	fromID, toID = strings.TrimSpace(fromID), strings.TrimSpace(toID)
	if fromID == "" || toID == "" {
		return entity.Connection{}, fmt.Errorf("usecase create connection: %w: empty endpoint", entity.ErrInvalidNote)
	}
	if fromID == toID {
		return entity.Connection{}, fmt.Errorf("usecase create connection: %w", entity.ErrSelfConnection)
	}

	id, err := gonanoid.New()
	if err != nil {
		return entity.Connection{}, fmt.Errorf("usecase generate connection id: %w", err)
	}

	conn, created, err := u.repo.CreateConnection(ctx, entity.Connection{ID: id, FromID: fromID, ToID: toID})
	if err != nil {
		return entity.Connection{}, fmt.Errorf("usecase create connection: %w", err)
	}

	if created {
		slogx.Info(ctx, "success to create connection", slogx.ConnectionID(conn.ID))
	} else {
		slogx.Debug(ctx, "connection already exists", slogx.ConnectionID(conn.ID))
	}

	return conn, nil
}

func (u *Usecase) DeleteConnection(ctx context.Context, id string) error {
	if err := u.repo.DeleteConnection(ctx, id); err != nil {
		if errors.Is(err, entity.ErrConnectionNotFound) {
			return nil
		}
		return fmt.Errorf("usecase delete connection: %w", err)
	}

	return nil
}
