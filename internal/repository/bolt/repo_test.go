package bolt_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/internal/repository/bolt"
)

func openRepo(t *testing.T) (*bolt.Repo, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", "board.db")
	repo, err := bolt.Open(context.Background(), path, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo, path
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := bolt.Open(context.Background(), " ", 1)
	assert.Error(t, err)
}

func TestRepo_NotesRoundTripInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo, _ := openRepo(t)

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for _, id := range []string{"z", "a", "m"} {
		_, err := repo.CreateNote(ctx, entity.Note{
			ID:        id,
			Content:   "note " + id,
			Tags:      []string{"ml"},
			Color:     entity.ColorGreen,
			Position:  entity.Position{X: 1.5, Y: -2},
			UpdatedAt: at,
		})
		require.NoError(t, err)
	}

	notes, err := repo.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "z", notes[0].ID)
	assert.Equal(t, "a", notes[1].ID)
	assert.Equal(t, "m", notes[2].ID)
	assert.Equal(t, entity.Position{X: 1.5, Y: -2}, notes[0].Position)
	assert.True(t, at.Equal(notes[0].UpdatedAt))
	assert.EqualValues(t, 1, notes[0].Version)

	updated, err := repo.UpdateNote(ctx, entity.Note{ID: "a", Content: "edited"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated.Version)

	notes, err = repo.ListNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", notes[1].ID)
	assert.Equal(t, "edited", notes[1].Content)

	_, err = repo.UpdateNote(ctx, entity.Note{ID: "missing"})
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)
	_, err = repo.GetNote(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)
}

func TestRepo_DeleteNoteCascades(t *testing.T) {
	ctx := context.Background()
	repo, _ := openRepo(t)

	for _, id := range []string{"a", "b", "c"} {
		_, err := repo.CreateNote(ctx, entity.Note{ID: id})
		require.NoError(t, err)
	}
	for _, c := range []entity.Connection{
		{ID: "1", FromID: "a", ToID: "b"},
		{ID: "2", FromID: "b", ToID: "c"},
		{ID: "3", FromID: "c", ToID: "a"},
	} {
		_, created, err := repo.CreateConnection(ctx, c)
		require.NoError(t, err)
		require.True(t, created)
	}

	require.NoError(t, repo.DeleteNote(ctx, "a"))
	assert.ErrorIs(t, repo.DeleteNote(ctx, "a"), entity.ErrNoteNotFound)

	conns, err := repo.ListConnections(ctx)
	require.NoError(t, err)
	require.Len(t, conns, 1)
	assert.Equal(t, "2", conns[0].ID)
}

func TestRepo_CreateConnectionDedupes(t *testing.T) {
	ctx := context.Background()
	repo, _ := openRepo(t)

	first, created, err := repo.CreateConnection(ctx, entity.Connection{ID: "1", FromID: "a", ToID: "b"})
	require.NoError(t, err)
	require.True(t, created)

	dup, created, err := repo.CreateConnection(ctx, entity.Connection{ID: "2", FromID: "b", ToID: "a"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, dup)

	require.NoError(t, repo.DeleteConnection(ctx, "1"))
	assert.ErrorIs(t, repo.DeleteConnection(ctx, "1"), entity.ErrConnectionNotFound)
}

func TestRepo_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	repo, path := openRepo(t)

	_, err := repo.CreateNote(ctx, entity.Note{ID: "1", Content: "kept"})
	require.NoError(t, err)
	_, err = repo.SaveMember(ctx, entity.Member{ID: "m1", Name: "Ada"})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened, err := bolt.Open(ctx, path, 1)
	require.NoError(t, err)
	defer reopened.Close()

	n, err := reopened.GetNote(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "kept", n.Content)

	m, err := reopened.GetMember(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", m.Name)
}

func TestRepo_MembersAndAttendance(t *testing.T) {
	ctx := context.Background()
	repo, _ := openRepo(t)

	back := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)
	_, err := repo.SaveMember(ctx, entity.Member{ID: "m2", Name: "Bo", ExpectedReturn: &back})
	require.NoError(t, err)
	_, err = repo.SaveMember(ctx, entity.Member{ID: "m1", Name: "Ada"})
	require.NoError(t, err)
	_, err = repo.SaveMember(ctx, entity.Member{ID: "m2", Name: "Bo", Present: true})
	require.NoError(t, err)

	members, err := repo.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "m2", members[0].ID)
	assert.True(t, members[0].Present)
	assert.Nil(t, members[0].ExpectedReturn)

	_, err = repo.GetMember(ctx, "ghost")
	assert.ErrorIs(t, err, entity.ErrMemberNotFound)

	in := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	_, err = repo.SaveAttendance(ctx, entity.AttendanceRecord{ID: "r1", MemberID: "m1", Date: "2024-05-01", CheckIn: &in})
	require.NoError(t, err)
	_, err = repo.SaveAttendance(ctx, entity.AttendanceRecord{ID: "r2", MemberID: "m2", Date: "2024-05-02"})
	require.NoError(t, err)

	all, err := repo.ListAttendance(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "r2", all[0].ID)

	rec, err := repo.GetAttendance(ctx, "m1", "2024-05-01")
	require.NoError(t, err)
	require.NotNil(t, rec.CheckIn)
	assert.True(t, in.Equal(*rec.CheckIn))

	_, err = repo.GetAttendance(ctx, "m1", "2024-05-02")
	assert.ErrorIs(t, err, entity.ErrAttendanceNotFound)
}

func TestRepo_RecordAttendanceSavesMemberToo(t *testing.T) {
	ctx := context.Background()
	repo, _ := openRepo(t)

	_, err := repo.SaveMember(ctx, entity.Member{ID: "m1", Name: "Ada"})
	require.NoError(t, err)
	_, err = repo.SaveMember(ctx, entity.Member{ID: "m2", Name: "Bo"})
	require.NoError(t, err)

	in := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	_, err = repo.RecordAttendance(ctx,
		entity.AttendanceRecord{ID: "r1", MemberID: "m1", Date: "2024-05-01", CheckIn: &in},
		entity.Member{ID: "m1", Name: "Ada", Present: true, Location: "lab"},
	)
	require.NoError(t, err)

	rec, err := repo.GetAttendance(ctx, "m1", "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "r1", rec.ID)

	m, err := repo.GetMember(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, m.Present)
	assert.Equal(t, "lab", m.Location)

	members, err := repo.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "m1", members[0].ID)
}
