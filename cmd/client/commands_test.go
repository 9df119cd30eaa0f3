package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/labboard/internal/board"
	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/internal/identity"
)

func TestTokenCmd(t *testing.T) {
	var out bytes.Buffer

	cmd := tokenCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--secret", "dev-secret-value", "--member", "user1", "--name", "Ada"})
	require.NoError(t, cmd.Execute())

	ids, err := identity.New(identity.NewOptions("dev-secret-value"))
	require.NoError(t, err)

	sess, err := ids.Verify(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "user1", sess.MemberID)
	assert.Equal(t, "Ada", sess.Name)
}

func TestTokenCmd_RequiresMember(t *testing.T) {
	cmd := tokenCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--secret", "dev-secret-value"})

	assert.Error(t, cmd.Execute())
}

func TestPrintView(t *testing.T) {
	v := board.Render(board.Snapshot{
		Notes: []entity.Note{
			{ID: "1", Content: "first line\nsecond", AssigneeIDs: []string{"m1"}},
			{ID: "2", Position: entity.Position{X: 300}},
		},
		Connections: []entity.Connection{{ID: "c1", FromID: "1", ToID: "2"}},
		Members:     []entity.Member{{ID: "m1", Name: "Ada"}},
	}, nil)

	var out bytes.Buffer
	printView(&out, v)

	s := out.String()
	assert.Contains(t, s, "first line")
	assert.NotContains(t, s, "second")
	assert.Contains(t, s, "Ada")
	assert.Contains(t, s, "c1")
}

func TestPrintNotes(t *testing.T) {
	var out bytes.Buffer
	printNotes(&out, []entity.Note{{ID: "n1", Color: entity.ColorBlue, Tags: []string{"ml", "x"}, Version: 2}})

	assert.Contains(t, out.String(), "n1")
	assert.Contains(t, out.String(), "ml,x")
}
