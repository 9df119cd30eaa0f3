package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx

	execs     int
	commits   int
	rollbacks int
}

func (f *fakeTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	if f.commits+f.rollbacks > 0 {
		return pgconn.CommandTag{}, pgx.ErrTxClosed
	}
	f.execs++
	return pgconn.CommandTag{}, nil
}

func (f *fakeTx) Commit(context.Context) error {
	f.commits++
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rollbacks++
	return nil
}

type fakePool struct {
	Querier

	tx    *fakeTx
	begun int
	execs int
}

func (f *fakePool) Begin(context.Context) (pgx.Tx, error) {
	f.begun++
	return f.tx, nil
}

func (f *fakePool) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	f.execs++
	return pgconn.CommandTag{}, nil
}

func newFakeDatabase() (*Database, *fakePool) {
	p := &fakePool{tx: &fakeTx{}}
	return &Database{pool: p}, p
}

func TestRunInTx_NestedCallJoinsOuterTx(t *testing.T) {
	db, p := newFakeDatabase()

	err := db.RunInTx(context.Background(), func(ctx context.Context) error {
		require.True(t, InTx(ctx))

		err := db.RunInTx(ctx, func(ctx context.Context) error {
			_, err := db.Exec(ctx, "delete from connections")
			return err
		})
		require.NoError(t, err)
		assert.Zero(t, p.tx.commits)

		_, err = db.Exec(ctx, "delete from notes")
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, 1, p.begun)
	assert.Equal(t, 2, p.tx.execs)
	assert.Equal(t, 1, p.tx.commits)
	assert.Zero(t, p.tx.rollbacks)
	assert.Zero(t, p.execs)
}

func TestRunInTx_NestedErrorRollsBackOnce(t *testing.T) {
	db, p := newFakeDatabase()
	boom := errors.New("boom")

	err := db.RunInTx(context.Background(), func(ctx context.Context) error {
		return db.RunInTx(ctx, func(context.Context) error { return boom })
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, 1, p.tx.rollbacks)
	assert.Zero(t, p.tx.commits)
}

func TestRunInTx_PanicRollsBack(t *testing.T) {
	db, p := newFakeDatabase()

	assert.Panics(t, func() {
		_ = db.RunInTx(context.Background(), func(context.Context) error {
			panic("boom")
		})
	})
	assert.Equal(t, 1, p.tx.rollbacks)
	assert.Zero(t, p.tx.commits)
}

func TestDatabase_UsesPoolOutsideTx(t *testing.T) {
	db, p := newFakeDatabase()
	ctx := context.Background()

	assert.False(t, InTx(ctx))
	_, err := db.Exec(ctx, "select 1")
	require.NoError(t, err)

	assert.Equal(t, 1, p.execs)
	assert.Zero(t, p.begun)
}
