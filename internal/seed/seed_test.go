package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/internal/repository/memory"
	"github.com/evgeniy-krivenko/labboard/internal/seed"
)

func TestLoad_Default(t *testing.T) {
	d, err := seed.Load("")
	require.NoError(t, err)

	assert.Len(t, d.Members, 3)
	assert.Len(t, d.Notes, 3)
	require.Len(t, d.Connections, 1)
	assert.Equal(t, "1", d.Connections[0].From)
	assert.Equal(t, time.Hour, d.Members[1].ReturnIn)
	assert.Equal(t, entity.Position{X: 400, Y: 200}, d.Notes[1].Position)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("notes:\n  - id: a\n    color: PURPLE\n"), 0o600))

	d, err := seed.Load(path)
	require.NoError(t, err)
	require.Len(t, d.Notes, 1)
	assert.Equal(t, "PURPLE", d.Notes[0].Color)

	_, err = seed.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	d, err := seed.Load("")
	require.NoError(t, err)

	applied, err := seed.Apply(ctx, repo, d, now)
	require.NoError(t, err)
	assert.True(t, applied)

	notes, err := repo.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, []string{"consult", "machine-learning"}, notes[2].Tags)
	assert.Equal(t, entity.ColorGreen, notes[2].Color)

	members, err := repo.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)
	require.NotNil(t, members[1].ExpectedReturn)
	assert.Equal(t, now.Add(time.Hour), *members[1].ExpectedReturn)
	assert.Nil(t, members[0].ExpectedReturn)

	applied, err = seed.Apply(ctx, repo, d, now)
	require.NoError(t, err)
	assert.False(t, applied)

	notes, err = repo.ListNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 3)
}
