package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/evgeniy-krivenko/labboard/internal/repository/postgres/gen"
	"github.com/evgeniy-krivenko/labboard/pkg/database"
	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

//go:embed migrations/*.sql
var migrations embed.FS

type transactor interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

type Repo struct {
	tx transactor
	q  gen.Querier
}

func New(db *database.Database) *Repo {
	return &Repo{
		tx: db,
		q:  gen.New(db),
	}
}

// Migrate applies the embedded goose migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %v", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("init goose provider: %v", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %v", err)
	}

	for _, r := range results {
		slogx.Info(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}

	return nil
}
