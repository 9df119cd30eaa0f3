package board

import "github.com/evgeniy-krivenko/labboard/internal/entity"

// Tags returns the distinct tags across notes in first-seen order.
func Tags(notes []entity.Note) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})
	for _, n := range notes {
		for _, tag := range n.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

// Filter keeps notes carrying every selected tag. No selection keeps all.
func Filter(notes []entity.Note, selected []string) []entity.Note {
	out := make([]entity.Note, 0, len(notes))
	for _, n := range notes {
		if n.HasAllTags(selected) {
			out = append(out, n.Clone())
		}
	}
	return out
}
