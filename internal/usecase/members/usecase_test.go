package members_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/internal/repository/memory"
	"github.com/evgeniy-krivenko/labboard/internal/usecase/members"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func setup(t *testing.T) (*members.Usecase, *clock, entity.Member) {
	t.Helper()

	clk := &clock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)}
	uc, err := members.New(members.NewOptions(memory.New(), members.WithNow(clk.Now)))
	require.NoError(t, err)

	m, err := uc.AddMember(context.Background(), members.NewMember{Name: " Ada ", Email: "ada@lab.org", Role: "PhD"})
	require.NoError(t, err)
	return uc, clk, m
}

func TestUsecase_AddMember(t *testing.T) {
	uc, _, m := setup(t)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Ada", m.Name)
	assert.False(t, m.Present)

	_, err := uc.AddMember(context.Background(), members.NewMember{Name: "  "})
	assert.ErrorIs(t, err, entity.ErrInvalidMember)

	all, err := uc.ListMembers(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUsecase_UpdatePresence(t *testing.T) {
	ctx := context.Background()
	uc, clk, m := setup(t)

	back := clk.now.Add(2 * time.Hour)
	away, err := uc.UpdatePresence(ctx, m.ID, members.Presence{Present: false, Location: "Library", ExpectedReturn: &back})
	require.NoError(t, err)
	require.NotNil(t, away.ExpectedReturn)
	assert.Equal(t, "Library", away.Location)

	clk.now = clk.now.Add(time.Hour)
	here, err := uc.UpdatePresence(ctx, m.ID, members.Presence{Present: true})
	require.NoError(t, err)
	assert.True(t, here.Present)
	assert.Nil(t, here.ExpectedReturn)
	assert.Equal(t, "Library", here.Location)
	assert.Equal(t, clk.now.UTC(), here.LastStatusChange)

	_, err = uc.UpdatePresence(ctx, "ghost", members.Presence{})
	assert.ErrorIs(t, err, entity.ErrMemberNotFound)
}

func TestUsecase_CheckInCheckOut(t *testing.T) {
	ctx := context.Background()
	uc, clk, m := setup(t)

	_, err := uc.CheckOut(ctx, m.ID)
	require.ErrorIs(t, err, entity.ErrAttendanceNotFound)

	in, err := uc.CheckIn(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", in.Date)
	require.NotNil(t, in.CheckIn)
	assert.Nil(t, in.CheckOut)

	got, err := uc.GetMember(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, got.Present)

	clk.now = clk.now.Add(8 * time.Hour)
	out, err := uc.CheckOut(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, *in.CheckIn, *out.CheckIn)
	require.NotNil(t, out.CheckOut)

	got, err = uc.GetMember(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, got.Present)

	again, err := uc.CheckIn(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, in.ID, again.ID)
	assert.Nil(t, again.CheckOut)

	history, err := uc.ListAttendance(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestUsecase_CheckInUnknownMember(t *testing.T) {
	uc, _, _ := setup(t)

	_, err := uc.CheckIn(context.Background(), "ghost")
	assert.ErrorIs(t, err, entity.ErrMemberNotFound)
}

type unavailableAttendance struct {
	*memory.Repo
}

func (unavailableAttendance) RecordAttendance(context.Context, entity.AttendanceRecord, entity.Member) (entity.AttendanceRecord, error) {
	return entity.AttendanceRecord{}, errors.New("storage unavailable")
}

func TestUsecase_CheckInFailureChangesNothing(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	_, err := repo.SaveMember(ctx, entity.Member{ID: "m1", Name: "Ada"})
	require.NoError(t, err)

	uc, err := members.New(members.NewOptions(&unavailableAttendance{Repo: repo}))
	require.NoError(t, err)

	_, err = uc.CheckIn(ctx, "m1")
	require.Error(t, err)

	m, err := repo.GetMember(ctx, "m1")
	require.NoError(t, err)
	assert.False(t, m.Present)

	recs, err := repo.ListAttendance(ctx, "m1")
	require.NoError(t, err)
	assert.Empty(t, recs)
}
