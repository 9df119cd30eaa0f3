package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/internal/repository/memory"
)

func TestRepo_ListNotesReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	_, err := repo.CreateNote(ctx, entity.Note{ID: "1", Tags: []string{"a"}})
	require.NoError(t, err)

	notes, err := repo.ListNotes(ctx)
	require.NoError(t, err)
	notes[0].Tags[0] = "mutated"
	notes[0].Content = "mutated"

	stored, err := repo.GetNote(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, stored.Tags)
	assert.Empty(t, stored.Content)
}

func TestRepo_UpdateBumpsVersion(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	created, err := repo.CreateNote(ctx, entity.Note{ID: "1"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, created.Version)

	updated, err := repo.UpdateNote(ctx, entity.Note{ID: "1", Content: "x"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated.Version)

	_, err = repo.UpdateNote(ctx, entity.Note{ID: "missing"})
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)
}

func TestRepo_DeleteNoteCascades(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	for _, id := range []string{"a", "b", "c"} {
		_, err := repo.CreateNote(ctx, entity.Note{ID: id})
		require.NoError(t, err)
	}
	for _, c := range []entity.Connection{
		{ID: "ab", FromID: "a", ToID: "b"},
		{ID: "ca", FromID: "c", ToID: "a"},
		{ID: "bc", FromID: "b", ToID: "c"},
	} {
		_, _, err := repo.CreateConnection(ctx, c)
		require.NoError(t, err)
	}

	require.NoError(t, repo.DeleteNote(ctx, "a"))

	conns, err := repo.ListConnections(ctx)
	require.NoError(t, err)
	require.Len(t, conns, 1)
	assert.Equal(t, "bc", conns[0].ID)

	assert.ErrorIs(t, repo.DeleteNote(ctx, "a"), entity.ErrNoteNotFound)
}

func TestRepo_CreateConnectionUnorderedPair(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	first, created, err := repo.CreateConnection(ctx, entity.Connection{ID: "1", FromID: "a", ToID: "b"})
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := repo.CreateConnection(ctx, entity.Connection{ID: "2", FromID: "b", ToID: "a"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, second)

	conns, err := repo.ListConnections(ctx)
	require.NoError(t, err)
	assert.Len(t, conns, 1)
}

func TestRepo_Attendance(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	_, err := repo.SaveAttendance(ctx, entity.AttendanceRecord{ID: "r1", MemberID: "m1", Date: "2024-05-01"})
	require.NoError(t, err)
	_, err = repo.SaveAttendance(ctx, entity.AttendanceRecord{ID: "r2", MemberID: "m1", Date: "2024-05-02"})
	require.NoError(t, err)
	_, err = repo.SaveAttendance(ctx, entity.AttendanceRecord{ID: "r3", MemberID: "m2", Date: "2024-05-02"})
	require.NoError(t, err)

	recs, err := repo.ListAttendance(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "2024-05-02", recs[0].Date)

	_, err = repo.GetAttendance(ctx, "m2", "2024-05-01")
	assert.ErrorIs(t, err, entity.ErrAttendanceNotFound)
}

func TestRepo_RecordAttendanceSavesMemberToo(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	_, err := repo.SaveMember(ctx, entity.Member{ID: "m1", Name: "Ada"})
	require.NoError(t, err)

	_, err = repo.RecordAttendance(ctx,
		entity.AttendanceRecord{ID: "r1", MemberID: "m1", Date: "2024-05-01"},
		entity.Member{ID: "m1", Name: "Ada", Present: true},
	)
	require.NoError(t, err)

	recs, err := repo.ListAttendance(ctx, "m1")
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	m, err := repo.GetMember(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, m.Present)
}
