package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type txKey struct{}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

// InTx reports whether ctx carries an open transaction.
func InTx(ctx context.Context) bool {
	return txFromContext(ctx) != nil
}

// RunInTx runs f in a transaction. A call made while ctx already carries one
// joins it: only the call that began the transaction commits or rolls it back.
func (db *Database) RunInTx(ctx context.Context, f func(context.Context) error) error {
	if InTx(ctx) {
		return f(ctx)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %v", err)
	}

	// Rollback must run even when ctx is already canceled.
	cleanupCtx := context.WithoutCancel(ctx)

	defer func() {
		if v := recover(); v != nil {
			if rerr := tx.Rollback(cleanupCtx); rerr != nil {
				v = fmt.Sprintf("%v: rollback tx: %v", v, rerr)
			}
			panic(v)
		}
	}()

	if err := f(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rerr := tx.Rollback(cleanupCtx); rerr != nil {
			return fmt.Errorf("%w: rollback tx: %v", err, rerr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %v", err)
	}
	return nil
}
