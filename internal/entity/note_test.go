package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
)

func TestNormalizeTags(t *testing.T) {
	got := entity.NormalizeTags([]string{" ml ", "", "x", "ml", "ML", "  "})
	assert.Equal(t, []string{"ml", "x", "ML"}, got)

	assert.Empty(t, entity.NormalizeTags(nil))
}

func TestParseColor(t *testing.T) {
	assert.Equal(t, entity.ColorBlue, entity.ParseColor("blue"))
	assert.Equal(t, entity.ColorPurple, entity.ParseColor(" Purple "))
	assert.Equal(t, entity.ColorWhite, entity.ParseColor("magenta"))
	assert.Equal(t, entity.ColorWhite, entity.ParseColor(""))
}

func TestNote_HasAllTags(t *testing.T) {
	n := entity.Note{Tags: []string{"ml", "x"}}

	assert.True(t, n.HasAllTags(nil))
	assert.True(t, n.HasAllTags([]string{"x"}))
	assert.False(t, n.HasAllTags([]string{"machine-learning"}))
	assert.False(t, n.HasAllTags([]string{"ml", "y"}))
}

func TestNote_CloneDoesNotShareSlices(t *testing.T) {
	n := entity.Note{ID: "1", Tags: []string{"a"}, AssigneeIDs: []string{"m1"}}
	c := n.Clone()
	c.Tags[0] = "changed"
	c.AssigneeIDs[0] = "changed"

	require.Equal(t, "a", n.Tags[0])
	require.Equal(t, "m1", n.AssigneeIDs[0])
	assert.Equal(t, []string{}, entity.Note{}.Clone().Tags)
}

func TestConnection_Joins(t *testing.T) {
	c := entity.Connection{ID: "c", FromID: "a", ToID: "b"}

	assert.True(t, c.Joins("a", "b"))
	assert.True(t, c.Joins("b", "a"))
	assert.False(t, c.Joins("a", "c"))
	assert.Equal(t, entity.PairKey("a", "b"), entity.PairKey("b", "a"))
}

func TestResolveAssignees_DropsDangling(t *testing.T) {
	members := []entity.Member{{ID: "m1", Name: "One"}, {ID: "m2", Name: "Two"}}

	got := entity.ResolveAssignees([]string{"m2", "gone", "m1"}, members)

	require.Len(t, got, 2)
	assert.Equal(t, "m2", got[0].ID)
	assert.Equal(t, "m1", got[1].ID)
}
