package board

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

func (b *Board) CreateNote(ctx context.Context, draft entity.NoteDraft) (entity.Note, error) {
	if draft.UpdatedAt.IsZero() {
		draft.UpdatedAt = b.now().UTC()
	}

	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	created, err := b.store.CreateNote(ctx, draft)
	if err != nil {
		b.setErr(err)
		return entity.Note{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if i := b.noteIndex(created.ID); i >= 0 {
		b.notes[i] = created.Clone()
	} else {
		b.notes = append(b.notes, created.Clone())
	}
	b.acked[created.ID] = created.Version

	return created, nil
}

// CreateNoteAtCenter adds an empty note under the middle of the viewport.
func (b *Board) CreateNoteAtCenter(ctx context.Context, color entity.Color) (entity.Note, error) {
	return b.CreateNote(ctx, entity.NoteDraft{
		Tags:     []string{},
		Color:    color,
		Position: b.ViewportCenter(),
	})
}

// DeleteNote removes the note and its connections from the store first and
// from the board only after the store succeeded.
func (b *Board) DeleteNote(ctx context.Context, id string) error {
	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	if err := b.store.DeleteNote(ctx, id); err != nil {
		b.setErr(err)
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.dropNoteLocked(id)
	return nil
}

func (b *Board) BeginDrag(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.beginLocked(id, ModeDragging)
}

// DragNote moves the note by a screen-space delta. Nothing is stored until
// CommitNoteDrag.
func (b *Board) DragNote(id string, screenDelta entity.Position) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.beginLocked(id, ModeDragging); err != nil {
		return err
	}

	i := b.noteIndex(id)
	b.notes[i].Position = b.notes[i].Position.Add(entity.Position{
		X: screenDelta.X / b.scale,
		Y: screenDelta.Y / b.scale,
	})
	return nil
}

// CommitNoteDrag stores the position reached by the drag and ends it. A note
// that is not being dragged is returned as is.
func (b *Board) CommitNoteDrag(ctx context.Context, id string) (entity.Note, error) {
	b.mu.Lock()
	i := b.noteIndex(id)
	if i < 0 {
		delete(b.modes, id)
		b.mu.Unlock()
		return entity.Note{}, entity.ErrNoteNotFound
	}
	note := b.notes[i].Clone()
	if b.modes[id] != ModeDragging {
		b.mu.Unlock()
		return note, nil
	}
	delete(b.modes, id)
	b.mu.Unlock()

	note.UpdatedAt = b.now().UTC()
	return b.persist(ctx, note)
}

func (b *Board) BeginEdit(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.beginLocked(id, ModeEditing); err != nil {
		return err
	}
	if _, ok := b.drafts[id]; !ok {
		b.drafts[id] = b.notes[b.noteIndex(id)].Content
	}
	return nil
}

func (b *Board) SetDraft(id, content string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.modes[id] != ModeEditing {
		return ErrNotEditing
	}
	b.drafts[id] = content
	return nil
}

func (b *Board) Draft(id string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.drafts[id]
	return d, ok
}

// CommitEdit ends editing and stores the draft when it differs from the
// note's content. The bool reports whether anything was stored.
func (b *Board) CommitEdit(ctx context.Context, id string) (entity.Note, bool, error) {
	b.mu.Lock()
	i := b.noteIndex(id)
	if i < 0 {
		b.clearInteractionLocked(id)
		b.mu.Unlock()
		return entity.Note{}, false, entity.ErrNoteNotFound
	}
	note := b.notes[i].Clone()
	draft, editing := b.drafts[id]
	editing = editing && b.modes[id] == ModeEditing
	b.clearInteractionLocked(id)
	b.mu.Unlock()

	if !editing || draft == note.Content {
		return note, false, nil
	}

	note.Content = draft
	note.UpdatedAt = b.now().UTC()

	stored, err := b.persist(ctx, note)
	if err != nil {
		return entity.Note{}, false, err
	}
	return stored, true, nil
}

func (b *Board) CancelEdit(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.modes[id] == ModeEditing {
		b.clearInteractionLocked(id)
	}
}

// AddTag ignores blank and already present tags.
func (b *Board) AddTag(ctx context.Context, id, tag string) (entity.Note, error) {
	tag = strings.TrimSpace(tag)
	return b.mutate(ctx, id, func(n *entity.Note) bool {
		if tag == "" || n.HasTag(tag) {
			return false
		}
		n.Tags = append(n.Tags, tag)
		return true
	})
}

func (b *Board) RemoveTag(ctx context.Context, id, tag string) (entity.Note, error) {
	return b.mutate(ctx, id, func(n *entity.Note) bool {
		i := slices.Index(n.Tags, tag)
		if i < 0 {
			return false
		}
		n.Tags = slices.Delete(n.Tags, i, i+1)
		return true
	})
}

func (b *Board) SetColor(ctx context.Context, id string, color entity.Color) (entity.Note, error) {
	color = entity.ParseColor(string(color))
	return b.mutate(ctx, id, func(n *entity.Note) bool {
		if n.Color == color {
			return false
		}
		n.Color = color
		return true
	})
}

func (b *Board) AssignMember(ctx context.Context, id, memberID string) (entity.Note, error) {
	memberID = strings.TrimSpace(memberID)
	return b.mutate(ctx, id, func(n *entity.Note) bool {
		if memberID == "" || slices.Contains(n.AssigneeIDs, memberID) {
			return false
		}
		n.AssigneeIDs = append(n.AssigneeIDs, memberID)
		return true
	})
}

func (b *Board) UnassignMember(ctx context.Context, id, memberID string) (entity.Note, error) {
	return b.mutate(ctx, id, func(n *entity.Note) bool {
		i := slices.Index(n.AssigneeIDs, memberID)
		if i < 0 {
			return false
		}
		n.AssigneeIDs = slices.Delete(n.AssigneeIDs, i, i+1)
		return true
	})
}

// mutate applies fn to a copy of the note and stores the result. The board
// only sees the change once the store acknowledged it.
func (b *Board) mutate(ctx context.Context, id string, fn func(*entity.Note) bool) (entity.Note, error) {
	b.mu.Lock()
	i := b.noteIndex(id)
	if i < 0 {
		b.mu.Unlock()
		return entity.Note{}, entity.ErrNoteNotFound
	}
	note := b.notes[i].Clone()
	b.mu.Unlock()

	if !fn(&note) {
		return note, nil
	}
	note.UpdatedAt = b.now().UTC()

	return b.persist(ctx, note)
}

func (b *Board) persist(ctx context.Context, note entity.Note) (entity.Note, error) {
	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	stored, err := b.store.UpdateNote(ctx, note)
	if err != nil {
		if errors.Is(err, entity.ErrNoteNotFound) {
			// Deleted elsewhere.
			slogx.Debug(ctx, "drop note missing in store", slogx.NoteID(note.ID))
			b.mu.Lock()
			b.dropNoteLocked(note.ID)
			b.mu.Unlock()
			return entity.Note{}, err
		}
		b.setErr(err)
		return entity.Note{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if i := b.noteIndex(stored.ID); i >= 0 {
		b.notes[i] = stored.Clone()
	}
	b.acked[stored.ID] = stored.Version

	return stored, nil
}

func (b *Board) beginLocked(id string, mode Mode) error {
	if b.connectingFrom != "" {
		return ErrConnecting
	}
	if b.noteIndex(id) < 0 {
		return entity.ErrNoteNotFound
	}
	if cur := b.modes[id]; cur != ModeIdle && cur != mode {
		return ErrNoteBusy
	}
	b.modes[id] = mode
	return nil
}

func (b *Board) clearInteractionLocked(id string) {
	delete(b.modes, id)
	delete(b.drafts, id)
}

func (b *Board) dropNoteLocked(id string) {
	if i := b.noteIndex(id); i >= 0 {
		b.notes = slices.Delete(b.notes, i, i+1)
	}
	b.connections = slices.DeleteFunc(b.connections, func(c entity.Connection) bool {
		return c.Touches(id)
	})
	b.clearInteractionLocked(id)
	delete(b.acked, id)
	if b.connectingFrom == id {
		b.connectingFrom = ""
	}
}
