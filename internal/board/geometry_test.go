package board_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/labboard/internal/board"
	"github.com/evgeniy-krivenko/labboard/internal/entity"
)

func note(id string, x, y float64, tags ...string) entity.Note {
	return entity.Note{ID: id, Position: entity.Position{X: x, Y: y}, Tags: tags}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, entity.Position{X: 128, Y: 75}, board.Center(note("a", 0, 0)))
}

func TestNewPath_ShortConnection(t *testing.T) {
	p := board.NewPath(entity.Connection{ID: "c", FromID: "a", ToID: "b"}, note("a", 0, 0), note("b", 100, 0))

	assert.Equal(t, entity.Position{X: 128, Y: 75}, p.Start)
	assert.Equal(t, entity.Position{X: 228, Y: 75}, p.End)
	// d = 100, offset = 20 along the normal (0, 1).
	assert.InDelta(t, 178, p.Control.X, 1e-9)
	assert.InDelta(t, 95, p.Control.Y, 1e-9)
	assert.InDelta(t, 178, p.Handle.X, 1e-9)
	assert.InDelta(t, 85, p.Handle.Y, 1e-9)
}

func TestNewPath_OffsetIsCapped(t *testing.T) {
	p := board.NewPath(entity.Connection{ID: "c", FromID: "a", ToID: "b"}, note("a", 0, 0), note("b", 0, 1000))

	mid := entity.Position{X: 128, Y: 575}
	offset := math.Hypot(p.Control.X-mid.X, p.Control.Y-mid.Y)
	assert.InDelta(t, 100, offset, 1e-9)
	// Normal of (0, 1) is (-1, 0).
	assert.InDelta(t, 28, p.Control.X, 1e-9)
}

func TestNewPath_SamePosition(t *testing.T) {
	p := board.NewPath(entity.Connection{ID: "c"}, note("a", 10, 10), note("b", 10, 10))

	assert.Equal(t, p.Start, p.Control)
	assert.Equal(t, p.Start, p.Handle)
}

func TestPaths_SkipsHiddenEndpoints(t *testing.T) {
	conns := []entity.Connection{
		{ID: "ab", FromID: "a", ToID: "b"},
		{ID: "ac", FromID: "a", ToID: "c"},
		{ID: "dangling", FromID: "a", ToID: "gone"},
	}
	notes := []entity.Note{note("a", 0, 0, "ml"), note("b", 300, 0, "ml"), note("c", 0, 300)}

	all := board.Paths(conns, notes)
	require.Len(t, all, 2)

	filtered := board.Paths(conns, board.Filter(notes, []string{"ml"}))
	require.Len(t, filtered, 1)
	assert.Equal(t, "ab", filtered[0].ConnectionID)
}

func TestPath_EndpointsOnCurve(t *testing.T) {
	p := board.NewPath(entity.Connection{ID: "c"}, note("a", 0, 0), note("b", 400, 200))

	assert.Equal(t, p.Start, p.At(0))
	assert.Equal(t, p.End, p.At(1))
	assert.InDelta(t, 0, p.Distance(p.Start), 1e-9)
}

func TestHitTest(t *testing.T) {
	paths := board.Paths(
		[]entity.Connection{{ID: "ab", FromID: "a", ToID: "b"}},
		[]entity.Note{note("a", 0, 0), note("b", 400, 0)},
	)
	require.Len(t, paths, 1)

	mid := paths[0].At(0.5)
	hit, ok := board.HitTest(paths, entity.Position{X: mid.X, Y: mid.Y + 3}, board.HitTolerance)
	require.True(t, ok)
	assert.Equal(t, "ab", hit.ConnectionID)

	_, ok = board.HitTest(paths, entity.Position{X: mid.X, Y: mid.Y + 50}, board.HitTolerance)
	assert.False(t, ok)

	_, ok = board.HitTest(nil, mid, board.HitTolerance)
	assert.False(t, ok)
}

func TestTags_FirstSeenOrder(t *testing.T) {
	notes := []entity.Note{
		note("1", 0, 0, "Typescript", "language"),
		note("2", 0, 0, "other"),
		note("3", 0, 0, "consult", "language"),
	}

	assert.Equal(t, []string{"Typescript", "language", "other", "consult"}, board.Tags(notes))
	assert.Equal(t, []string{}, board.Tags(nil))
}

func TestFilter_RequiresEverySelectedTag(t *testing.T) {
	notes := []entity.Note{
		note("1", 0, 0, "ml", "x"),
		note("2", 0, 0, "machine-learning"),
		note("3", 0, 0, "ml"),
	}

	got := board.Filter(notes, []string{"ml", "x"})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	assert.Len(t, board.Filter(notes, nil), 3)
}

func TestRender(t *testing.T) {
	s := board.Snapshot{
		Notes: []entity.Note{note("1", 0, 0, "ml"), note("2", 300, 0, "other")},
		Connections: []entity.Connection{
			{ID: "c", FromID: "1", ToID: "2"},
		},
	}

	v := board.Render(s, []string{"ml"})
	require.Len(t, v.Notes, 1)
	assert.Equal(t, "1", v.Notes[0].Note.ID)
	assert.Empty(t, v.Paths)
	assert.Equal(t, []string{"ml", "other"}, v.Tags)
	assert.Equal(t, board.DefaultScale, v.Scale)
}
