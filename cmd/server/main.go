package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	boardapi "github.com/evgeniy-krivenko/labboard/internal/api/board"
	"github.com/evgeniy-krivenko/labboard/internal/config"
	"github.com/evgeniy-krivenko/labboard/internal/ctxtr"
	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/internal/identity"
	"github.com/evgeniy-krivenko/labboard/internal/repository/bolt"
	"github.com/evgeniy-krivenko/labboard/internal/repository/memory"
	"github.com/evgeniy-krivenko/labboard/internal/repository/postgres"
	"github.com/evgeniy-krivenko/labboard/internal/seed"
	"github.com/evgeniy-krivenko/labboard/internal/usecase/members"
	"github.com/evgeniy-krivenko/labboard/internal/usecase/notes"
	"github.com/evgeniy-krivenko/labboard/pkg/database"
	"github.com/evgeniy-krivenko/labboard/pkg/grpcx"
	"github.com/evgeniy-krivenko/labboard/pkg/gwserver"
	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

type storage interface {
	ListNotes(ctx context.Context) ([]entity.Note, error)
	GetNote(ctx context.Context, id string) (entity.Note, error)
	CreateNote(ctx context.Context, note entity.Note) (entity.Note, error)
	UpdateNote(ctx context.Context, note entity.Note) (entity.Note, error)
	DeleteNote(ctx context.Context, id string) error
	ListConnections(ctx context.Context) ([]entity.Connection, error)
	CreateConnection(ctx context.Context, conn entity.Connection) (entity.Connection, bool, error)
	DeleteConnection(ctx context.Context, id string) error

	ListMembers(ctx context.Context) ([]entity.Member, error)
	GetMember(ctx context.Context, id string) (entity.Member, error)
	SaveMember(ctx context.Context, m entity.Member) (entity.Member, error)
	ListAttendance(ctx context.Context, memberID string) ([]entity.AttendanceRecord, error)
	GetAttendance(ctx context.Context, memberID, date string) (entity.AttendanceRecord, error)
	RecordAttendance(ctx context.Context, rec entity.AttendanceRecord, m entity.Member) (entity.AttendanceRecord, error)
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(os.Stdout, cfg.App.LogLevel, cfg.App.Pretty); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	store, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.Storage.Seed {
		data, err := seed.Load(cfg.Storage.SeedPath)
		if err != nil {
			return fmt.Errorf("load seed: %v", err)
		}
		if _, err := seed.Apply(ctx, store, data, time.Now()); err != nil {
			return fmt.Errorf("apply seed: %v", err)
		}
	}

	notesUC, err := notes.New(notes.NewOptions(store))
	if err != nil {
		return fmt.Errorf("init notes usecase: %v", err)
	}

	membersUC, err := members.New(members.NewOptions(store))
	if err != nil {
		return fmt.Errorf("init members usecase: %v", err)
	}

	boardSvc, err := boardapi.New(boardapi.NewOptions(notesUC, membersUC))
	if err != nil {
		return fmt.Errorf("init board service: %v", err)
	}

	authInterceptor, authMiddleware, err := auth(ctx, cfg.Auth)
	if err != nil {
		return err
	}

	grpcSrv, err := grpcx.New(grpcx.NewOptions(
		cfg.GRPC.Addr,
		grpcx.WithServices(boardSvc),
		grpcx.WithInterceptors(authInterceptor),
		grpcx.WithLogger(slogx.Default()),
		grpcx.WithMaxConcurrentStreams(cfg.GRPC.MaxConcurrentStreams),
		grpcx.WithTime(cfg.GRPC.KeepaliveTime),
		grpcx.WithTimeout(cfg.GRPC.KeepaliveTimeout),
	))
	if err != nil {
		return fmt.Errorf("init grpc server: %v", err)
	}

	api := boardSvc.HTTPHandler()
	mux := http.NewServeMux()
	mux.Handle("GET /healthz", api)
	mux.Handle("/", authMiddleware(api))

	gwSrv, err := gwserver.New(gwserver.NewOptions(
		cfg.HTTP.Addr,
		mux,
		gwserver.WithMiddlewares(slogx.HTTPMiddleware),
		gwserver.WithAllowedOrigins(cfg.HTTP.AllowedOrigins...),
		gwserver.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return grpcSrv.Run(ctx) })
	eg.Go(func() error { return gwSrv.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}

func openStorage(ctx context.Context, cfg config.Config) (storage, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverBolt:
		repo, err := bolt.Open(ctx, cfg.Storage.BoltPath, cfg.Database.RetryAttempts)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt storage: %v", err)
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				slogx.Warn(ctx, "close bolt storage", slogx.Err(err))
			}
		}, nil

	case config.DriverPostgres:
		pool, err := database.NewPGX(ctx, database.NewOptions(
			net.JoinHostPort(cfg.Database.Host, cfg.Database.Port),
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			database.WithRetryAttempts(cfg.Database.RetryAttempts),
			database.WithLogger(slogx.Default()),
		))
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %v", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.New(database.NewDatabase(pool)), pool.Close, nil

	default:
		return memory.New(), func() {}, nil
	}
}

// auth verifies bearer tokens when a secret is configured and otherwise acts
// as the configured mock member.
func auth(ctx context.Context, cfg config.AuthConfig) (grpc.UnaryServerInterceptor, func(http.Handler) http.Handler, error) {
	if cfg.Secret == "" {
		slogx.Warn(ctx, "auth secret is empty, using mock member", slog.String("member_id", cfg.MockMemberID))
		return ctxtr.MockAuthInterceptor(cfg.MockMemberID), ctxtr.MockAuthMiddleware(cfg.MockMemberID), nil
	}

	ids, err := identity.New(identity.NewOptions(cfg.Secret, identity.WithTtl(cfg.TokenTTL)))
	if err != nil {
		return nil, nil, fmt.Errorf("init identity: %v", err)
	}

	return grpcx.AuthInterceptor(ids), ids.Middleware, nil
}
