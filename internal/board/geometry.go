package board

import (
	"math"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
)

const (
	CardWidth  = 256.0
	CardHeight = 150.0

	curveFactor    = 0.2
	maxCurveOffset = 100.0

	// HitTolerance is in screen pixels; Board.HitTest divides it by the scale.
	HitTolerance = 8.0
	hitSamples   = 32
)

// Path is a quadratic curve between two note centers.
type Path struct {
	ConnectionID string          `json:"connection_id"`
	FromID       string          `json:"from_id"`
	ToID         string          `json:"to_id"`
	Start        entity.Position `json:"start"`
	Control      entity.Position `json:"control"`
	End          entity.Position `json:"end"`
	// Handle is where the delete affordance is drawn.
	Handle entity.Position `json:"handle"`
}

func Center(n entity.Note) entity.Position {
	return n.Position.Add(entity.Position{X: CardWidth / 2, Y: CardHeight / 2})
}

func NewPath(c entity.Connection, from, to entity.Note) Path {
	start, end := Center(from), Center(to)
	mid := entity.Position{X: (start.X + end.X) / 2, Y: (start.Y + end.Y) / 2}

	p := Path{
		ConnectionID: c.ID,
		FromID:       c.FromID,
		ToID:         c.ToID,
		Start:        start,
		Control:      mid,
		End:          end,
		Handle:       mid,
	}

	dx, dy := end.X-start.X, end.Y-start.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return p
	}

	offset := math.Min(d*curveFactor, maxCurveOffset)
	nx, ny := -dy/d, dx/d

	p.Control = entity.Position{X: mid.X + nx*offset, Y: mid.Y + ny*offset}
	p.Handle = entity.Position{X: mid.X + nx*offset/2, Y: mid.Y + ny*offset/2}
	return p
}

// Paths skips connections with an endpoint outside notes.
func Paths(conns []entity.Connection, notes []entity.Note) []Path {
	byID := make(map[string]entity.Note, len(notes))
	for _, n := range notes {
		byID[n.ID] = n
	}

	out := make([]Path, 0, len(conns))
	for _, c := range conns {
		from, ok := byID[c.FromID]
		if !ok {
			continue
		}
		to, ok := byID[c.ToID]
		if !ok {
			continue
		}
		out = append(out, NewPath(c, from, to))
	}
	return out
}

// At evaluates the curve at t in [0, 1].
func (p Path) At(t float64) entity.Position {
	u := 1 - t
	return entity.Position{
		X: u*u*p.Start.X + 2*u*t*p.Control.X + t*t*p.End.X,
		Y: u*u*p.Start.Y + 2*u*t*p.Control.Y + t*t*p.End.Y,
	}
}

// Distance approximates the distance from pt to the curve by sampling it.
func (p Path) Distance(pt entity.Position) float64 {
	best := math.Inf(1)
	prev := p.At(0)
	for i := 1; i <= hitSamples; i++ {
		next := p.At(float64(i) / hitSamples)
		best = math.Min(best, segmentDistance(pt, prev, next))
		prev = next
	}
	return best
}

// HitTest returns the closest path within tolerance of pt.
func HitTest(paths []Path, pt entity.Position, tolerance float64) (Path, bool) {
	var (
		hit  Path
		best = math.Inf(1)
	)
	for _, p := range paths {
		if d := p.Distance(pt); d <= tolerance && d < best {
			hit, best = p, d
		}
	}
	return hit, !math.IsInf(best, 1)
}

func segmentDistance(p, a, b entity.Position) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
