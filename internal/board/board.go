package board

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
)

const (
	MinScale     = 0.25
	MaxScale     = 2.0
	ZoomStep     = 0.1
	DefaultScale = 1.0
)

var (
	ErrConnecting = errors.New("board is connecting notes")
	ErrNoteBusy   = errors.New("note is busy")
	ErrNotEditing = errors.New("note is not being edited")
)

type Mode int

const (
	ModeIdle Mode = iota
	ModeEditing
	ModeDragging
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModeDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Store is the note store the board writes through.
type Store interface {
	ListNotes(ctx context.Context) ([]entity.Note, error)
	CreateNote(ctx context.Context, draft entity.NoteDraft) (entity.Note, error)
	UpdateNote(ctx context.Context, note entity.Note) (entity.Note, error)
	DeleteNote(ctx context.Context, id string) error

	ListConnections(ctx context.Context) ([]entity.Connection, error)
	CreateConnection(ctx context.Context, fromID, toID string) (entity.Connection, error)
	DeleteConnection(ctx context.Context, id string) error
}

type MemberSource interface {
	ListMembers(ctx context.Context) ([]entity.Member, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=board_options.gen.go -from-struct=Options
type Options struct {
	store Store `option:"mandatory" validate:"required"`

	memberSource MemberSource

	viewportWidth  float64 `default:"1200" validate:"gt=0"`
	viewportHeight float64 `default:"800" validate:"gt=0"`

	now func() time.Time
}

// Board holds the view state of one client session. Writes to the store and
// refreshes are serialized so a refresh never reads before an earlier write
// is acknowledged.
type Board struct {
	Options

	writeMu sync.Mutex

	mu             sync.Mutex
	scale          float64
	pan            entity.Position
	draggingBoard  bool
	connectingFrom string
	selectedTags   []string

	notes       []entity.Note
	connections []entity.Connection
	members     []entity.Member

	modes  map[string]Mode
	drafts map[string]string
	// acked holds the latest version the store acknowledged per note.
	acked map[string]int64

	lastErr error
}

func New(opts Options) (*Board, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate board options: %v", err)
	}

	if opts.now == nil {
		opts.now = time.Now
	}

	return &Board{
		Options: opts,
		scale:   DefaultScale,
		modes:   make(map[string]Mode),
		drafts:  make(map[string]string),
		acked:   make(map[string]int64),
	}, nil
}

func (b *Board) Scale() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.scale
}

func (b *Board) Pan() entity.Position {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.pan
}

// Zoom adds delta to the scale, clamped to [MinScale, MaxScale].
func (b *Board) Zoom(delta float64) float64 {
	return b.zoom(delta, false)
}

// ZoomIn and ZoomOut move by ZoomStep and keep the scale on the step grid so
// repeated steps do not drift.
func (b *Board) ZoomIn() float64  { return b.zoom(ZoomStep, true) }
func (b *Board) ZoomOut() float64 { return b.zoom(-ZoomStep, true) }

func (b *Board) zoom(delta float64, snap bool) float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := b.scale + delta
	if snap {
		s = math.Round(s*100) / 100
	}
	b.scale = math.Max(MinScale, math.Min(MaxScale, s))
	return b.scale
}

func (b *Board) BeginBoardDrag() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.draggingBoard = true
}

func (b *Board) EndBoardDrag() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.draggingBoard = false
}

// PanBy moves the board only while it is being dragged.
func (b *Board) PanBy(dx, dy float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.draggingBoard {
		return false
	}
	b.pan = b.pan.Add(entity.Position{X: dx, Y: dy})
	return true
}

func (b *Board) ScreenToBoard(p entity.Position) entity.Position {
	b.mu.Lock()
	defer b.mu.Unlock()

	return entity.Position{X: (p.X - b.pan.X) / b.scale, Y: (p.Y - b.pan.Y) / b.scale}
}

func (b *Board) BoardToScreen(p entity.Position) entity.Position {
	b.mu.Lock()
	defer b.mu.Unlock()

	return entity.Position{X: p.X*b.scale + b.pan.X, Y: p.Y*b.scale + b.pan.Y}
}

// ViewportCenter is the board point under the middle of the viewport.
func (b *Board) ViewportCenter() entity.Position {
	b.mu.Lock()
	defer b.mu.Unlock()

	return entity.Position{
		X: (b.viewportWidth/2 - b.pan.X) / b.scale,
		Y: (b.viewportHeight/2 - b.pan.Y) / b.scale,
	}
}

func (b *Board) SetViewport(w, h float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if w > 0 {
		b.viewportWidth = w
	}
	if h > 0 {
		b.viewportHeight = h
	}
}

// ToggleTag reports whether tag is selected afterwards.
func (b *Board) ToggleTag(tag string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if i := slices.Index(b.selectedTags, tag); i >= 0 {
		b.selectedTags = slices.Delete(b.selectedTags, i, i+1)
		return false
	}
	b.selectedTags = append(b.selectedTags, tag)
	return true
}

func (b *Board) ClearTags() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.selectedTags = nil
}

func (b *Board) SelectedTags() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.selectedTags)
}

func (b *Board) Notes() []entity.Note {
	b.mu.Lock()
	defer b.mu.Unlock()

	return Filter(b.notes, nil)
}

func (b *Board) Note(id string) (entity.Note, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.noteIndex(id)
	if i < 0 {
		return entity.Note{}, false
	}
	return b.notes[i].Clone(), true
}

func (b *Board) Connections() []entity.Connection {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.connections)
}

func (b *Board) Members() []entity.Member {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.members)
}

func (b *Board) VisibleNotes() []entity.Note {
	b.mu.Lock()
	defer b.mu.Unlock()

	return Filter(b.notes, b.selectedTags)
}

// Tags lists every tag on the board, not only on visible notes.
func (b *Board) Tags() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return Tags(b.notes)
}

func (b *Board) Paths() []Path {
	b.mu.Lock()
	defer b.mu.Unlock()

	return Paths(b.connections, Filter(b.notes, b.selectedTags))
}

// HitTest finds the visible connection under a board-space point.
func (b *Board) HitTest(p entity.Position) (Path, bool) {
	return HitTest(b.Paths(), p, HitTolerance/b.Scale())
}

func (b *Board) Mode(noteID string) Mode {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.modes[noteID]
}

func (b *Board) ConnectingFrom() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.connectingFrom
}

// LastError is the most recent store failure, kept until cleared.
func (b *Board) LastError() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.lastErr
}

func (b *Board) ClearError() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastErr = nil
}

func (b *Board) setErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastErr = err
}

func (b *Board) noteIndex(id string) int {
	return slices.IndexFunc(b.notes, func(n entity.Note) bool { return n.ID == id })
}
