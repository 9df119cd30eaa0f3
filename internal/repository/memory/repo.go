package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
)

// Repo keeps every collection in process memory. Reads return copies.
type Repo struct {
	mu sync.RWMutex

	notes       []entity.Note
	connections []entity.Connection
	members     []entity.Member
	attendance  []entity.AttendanceRecord
}

func New() *Repo {
	return &Repo{}
}

func (r *Repo) ListNotes(_ context.Context) ([]entity.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Note, 0, len(r.notes))
	for _, n := range r.notes {
		out = append(out, n.Clone())
	}
	return out, nil
}

func (r *Repo) GetNote(_ context.Context, id string) (entity.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.noteIndex(id)
	if i < 0 {
		return entity.Note{}, entity.ErrNoteNotFound
	}
	return r.notes[i].Clone(), nil
}

func (r *Repo) CreateNote(_ context.Context, note entity.Note) (entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if note.Version == 0 {
		note.Version = 1
	}
	note = note.Clone()
	if i := r.noteIndex(note.ID); i >= 0 {
		r.notes[i] = note
	} else {
		r.notes = append(r.notes, note)
	}
	return note.Clone(), nil
}

func (r *Repo) UpdateNote(_ context.Context, note entity.Note) (entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.noteIndex(note.ID)
	if i < 0 {
		return entity.Note{}, entity.ErrNoteNotFound
	}
	note = note.Clone()
	note.Version = r.notes[i].Version + 1
	r.notes[i] = note
	return note.Clone(), nil
}

func (r *Repo) DeleteNote(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.noteIndex(id)
	if i < 0 {
		return entity.ErrNoteNotFound
	}
	r.notes = slices.Delete(r.notes, i, i+1)
	r.connections = slices.DeleteFunc(r.connections, func(c entity.Connection) bool {
		return c.Touches(id)
	})
	return nil
}

func (r *Repo) ListConnections(_ context.Context) ([]entity.Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.connections), nil
}

func (r *Repo) CreateConnection(_ context.Context, conn entity.Connection) (entity.Connection, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.connections {
		if c.Joins(conn.FromID, conn.ToID) {
			return c, false, nil
		}
	}
	r.connections = append(r.connections, conn)
	return conn, true, nil
}

func (r *Repo) DeleteConnection(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.connections)
	r.connections = slices.DeleteFunc(r.connections, func(c entity.Connection) bool {
		return c.ID == id
	})
	if len(r.connections) == before {
		return entity.ErrConnectionNotFound
	}
	return nil
}

func (r *Repo) noteIndex(id string) int {
	return slices.IndexFunc(r.notes, func(n entity.Note) bool { return n.ID == id })
}
