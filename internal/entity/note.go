package entity

import (
	"errors"
	"slices"
	"strings"
	"time"
)

var (
	ErrNoteNotFound   = errors.New("note not found")
	ErrSelfConnection = errors.New("note cannot be connected to itself")
	ErrInvalidNote    = errors.New("invalid note")
)

// Position is a point in board space. Screen coordinates are derived from it
// and never stored.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

type Note struct {
	ID          string
	Content     string
	Tags        []string
	Color       Color
	Position    Position
	UpdatedAt   time.Time
	AssigneeIDs []string
	Version     int64
}

// NoteDraft is a note that has not been stored yet.
type NoteDraft struct {
	Content     string
	Tags        []string
	Color       Color
	Position    Position
	UpdatedAt   time.Time
	AssigneeIDs []string
}

func (d NoteDraft) WithID(id string) Note {
	return Note{
		ID:          id,
		Content:     d.Content,
		Tags:        NormalizeTags(d.Tags),
		Color:       ParseColor(string(d.Color)),
		Position:    d.Position,
		UpdatedAt:   d.UpdatedAt,
		AssigneeIDs: NormalizeTags(d.AssigneeIDs),
	}
}

// Clone returns a deep copy so callers never share slices with storage.
func (n Note) Clone() Note {
	n.Tags = slices.Clone(n.Tags)
	n.AssigneeIDs = slices.Clone(n.AssigneeIDs)
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return n
}

func (n Note) HasTag(tag string) bool {
	return slices.Contains(n.Tags, tag)
}

// HasAllTags reports whether every tag in tags is present on the note.
func (n Note) HasAllTags(tags []string) bool {
	for _, tag := range tags {
		if !n.HasTag(tag) {
			return false
		}
	}
	return true
}

// SameContent compares the user-editable fields, ignoring version and timestamp.
func (n Note) SameContent(o Note) bool {
	return n.ID == o.ID &&
		n.Content == o.Content &&
		n.Color == o.Color &&
		n.Position == o.Position &&
		slices.Equal(n.Tags, o.Tags) &&
		slices.Equal(n.AssigneeIDs, o.AssigneeIDs)
}

// NormalizeTags trims values, drops empty ones and keeps the first occurrence
// of each duplicate.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
