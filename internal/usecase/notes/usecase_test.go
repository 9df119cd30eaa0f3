package notes_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/internal/repository/memory"
	"github.com/evgeniy-krivenko/labboard/internal/usecase/notes"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newUsecase(t *testing.T) *notes.Usecase {
	t.Helper()

	uc, err := notes.New(notes.NewOptions(memory.New(), notes.WithNow(func() time.Time { return fixedNow })))
	require.NoError(t, err)
	return uc
}

func TestNew_RequiresRepo(t *testing.T) {
	_, err := notes.New(notes.NewOptions(nil))
	assert.Error(t, err)
}

func TestUsecase_CreateNote(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(t)

	created, err := uc.CreateNote(ctx, entity.NoteDraft{
		Content:  "New note",
		Color:    entity.ColorBlue,
		Position: entity.Position{X: 100, Y: 100},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.ColorBlue, created.Color)
	assert.Equal(t, entity.Position{X: 100, Y: 100}, created.Position)
	assert.Equal(t, []string{}, created.Tags)
	assert.Equal(t, fixedNow, created.UpdatedAt)
	assert.EqualValues(t, 1, created.Version)

	all, err := uc.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestUsecase_CreateNoteDistinctIDs(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(t)

	a, err := uc.CreateNote(ctx, entity.NoteDraft{})
	require.NoError(t, err)
	b, err := uc.CreateNote(ctx, entity.NoteDraft{})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestUsecase_UpdateNoteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(t)

	created, err := uc.CreateNote(ctx, entity.NoteDraft{Content: "a", Color: entity.ColorRed})
	require.NoError(t, err)

	edited := created
	edited.Content = "b"
	edited.Tags = []string{"ml", " ml "}

	first, err := uc.UpdateNote(ctx, edited)
	require.NoError(t, err)
	assert.Equal(t, "b", first.Content)
	assert.Equal(t, []string{"ml"}, first.Tags)
	assert.EqualValues(t, 2, first.Version)

	second, err := uc.UpdateNote(ctx, edited)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUsecase_UpdateMissingNote(t *testing.T) {
	uc := newUsecase(t)

	_, err := uc.UpdateNote(context.Background(), entity.Note{ID: "nope"})
	assert.ErrorIs(t, err, entity.ErrNoteNotFound)

	_, err = uc.UpdateNote(context.Background(), entity.Note{})
	assert.ErrorIs(t, err, entity.ErrInvalidNote)
}

func TestUsecase_DeleteNoteCascadesAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(t)

	a, err := uc.CreateNote(ctx, entity.NoteDraft{})
	require.NoError(t, err)
	b, err := uc.CreateNote(ctx, entity.NoteDraft{})
	require.NoError(t, err)
	_, err = uc.CreateConnection(ctx, a.ID, b.ID)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteNote(ctx, a.ID))
	require.NoError(t, uc.DeleteNote(ctx, a.ID))

	conns, err := uc.ListConnections(ctx)
	require.NoError(t, err)
	assert.Empty(t, conns)
}

func TestUsecase_CreateConnection(t *testing.T) {
	ctx := context.Background()
	uc := newUsecase(t)

	first, err := uc.CreateConnection(ctx, "a", "b")
	require.NoError(t, err)

	again, err := uc.CreateConnection(ctx, "b", "a")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	_, err = uc.CreateConnection(ctx, "a", "a")
	assert.ErrorIs(t, err, entity.ErrSelfConnection)

	_, err = uc.CreateConnection(ctx, "a", " ")
	assert.ErrorIs(t, err, entity.ErrInvalidNote)

	require.NoError(t, uc.DeleteConnection(ctx, first.ID))
	require.NoError(t, uc.DeleteConnection(ctx, first.ID))

	conns, err := uc.ListConnections(ctx)
	require.NoError(t, err)
	assert.Empty(t, conns)
}
