package entity

import "errors"

var ErrConnectionNotFound = errors.New("connection not found")

// Connection is an undirected edge between two notes. FromID and ToID are
// weak references.
type Connection struct {
	ID     string
	FromID string
	ToID   string
}

// Joins reports whether the connection links a and b in either direction.
func (c Connection) Joins(a, b string) bool {
	return (c.FromID == a && c.ToID == b) || (c.FromID == b && c.ToID == a)
}

func (c Connection) Touches(noteID string) bool {
	return c.FromID == noteID || c.ToID == noteID
}

// PairKey is the same for both orderings of a pair.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}
