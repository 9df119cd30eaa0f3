package board

import (
	"slices"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
)

type NoteView struct {
	Note entity.Note
	// Assignees are resolved against the member list; unknown ids are dropped.
	Assignees []entity.Member
	Screen    entity.Position
	Mode      Mode
}

// View is everything a presentation layer needs to draw the board.
type View struct {
	Scale          float64
	Pan            entity.Position
	SelectedTags   []string
	Tags           []string
	Notes          []NoteView
	Paths          []Path
	ConnectingFrom string
	Error          string
}

func (b *Board) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()

	visible := Filter(b.notes, b.selectedTags)

	v := View{
		Scale:          b.scale,
		Pan:            b.pan,
		SelectedTags:   slices.Clone(b.selectedTags),
		Tags:           Tags(b.notes),
		Notes:          make([]NoteView, 0, len(visible)),
		Paths:          Paths(b.connections, visible),
		ConnectingFrom: b.connectingFrom,
	}
	if b.lastErr != nil {
		v.Error = b.lastErr.Error()
	}

	for _, n := range visible {
		v.Notes = append(v.Notes, NoteView{
			Note:      n,
			Assignees: entity.ResolveAssignees(n.AssigneeIDs, b.members),
			Screen:    entity.Position{X: n.Position.X*b.scale + b.pan.X, Y: n.Position.Y*b.scale + b.pan.Y},
			Mode:      b.modes[n.ID],
		})
	}

	return v
}

// Render builds a view of a snapshot with a fresh board state filtered by
// tags. Used by stateless callers such as the HTTP API.
func Render(s Snapshot, selectedTags []string) View {
	b := &Board{
		scale:        DefaultScale,
		selectedTags: slices.Clone(selectedTags),
		modes:        map[string]Mode{},
		drafts:       map[string]string{},
		acked:        map[string]int64{},
	}
	b.Replace(s)
	return b.View()
}
