package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

type logger interface {
	Warn(context.Context, string, ...slog.Attr)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=client_options.gen.go -from-struct=Options
type Options struct {
	address  string `option:"mandatory" validate:"required,hostname_port"`
	username string `option:"mandatory" validate:"required"`
	password string `option:"mandatory" validate:"required"`
	database string `option:"mandatory" validate:"required"`

	retry         bool `default:"true"`
	retryAttempts uint `default:"1" validate:"min=1,max=10"`

	logger logger

	maxOpenConns int `default:"5" validate:"max=20"`
	maxIdleConns int `default:"5" validate:"max=20"`
}

const (
	pingDelay    = 300 * time.Millisecond
	pingMaxDelay = 3 * time.Second
	appName      = "labboard"
)

// NewPGX opens a pool and waits until the database answers a ping. The pool
// is closed when the database never comes up.
func NewPGX(ctx context.Context, opts Options) (*pgxpool.Pool, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options for pgx: %v", err)
	}

	if opts.logger == nil {
		opts.logger = noopLogger{}
	}

	cfg, err := poolConfig(opts)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open new pgx pool: %v", err)
	}

	if err := ping(ctx, pool, opts); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping to database %s: %v", opts.address, err)
	}

	return pool, nil
}

func poolConfig(opts Options) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(dsn(opts))
	if err != nil {
		return nil, fmt.Errorf("parse pgx pool config: %v", err)
	}

	if opts.maxOpenConns > 0 {
		cfg.MaxConns = int32(opts.maxOpenConns)
	}
	if opts.maxIdleConns > 0 && opts.maxIdleConns <= opts.maxOpenConns {
		cfg.MinConns = int32(opts.maxIdleConns)
	}
	cfg.ConnConfig.RuntimeParams["application_name"] = appName

	return cfg, nil
}

func dsn(opts Options) string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(opts.username, opts.password),
		Host:   opts.address,
		Path:   opts.database,
	}
	return u.String()
}

func ping(ctx context.Context, pool *pgxpool.Pool, opts Options) error {
	if !opts.retry {
		return pool.Ping(ctx)
	}

	return retry.Do(
		func() error { return pool.Ping(ctx) },
		retry.Context(ctx),
		retry.Attempts(opts.retryAttempts),
		retry.Delay(pingDelay),
		retry.MaxDelay(pingMaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			opts.logger.Warn(ctx, "database is not ready",
				slog.Any("err", err),
				slog.Uint64("attempt", uint64(attempt+1)),
				slog.Uint64("attempts", uint64(opts.retryAttempts)),
			)
		}),
	)
}

type noopLogger struct{}

func (noopLogger) Warn(context.Context, string, ...slog.Attr) {}
