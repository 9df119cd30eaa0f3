package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/evgeniy-krivenko/labboard/internal/board"
	"github.com/evgeniy-krivenko/labboard/internal/config"
	"github.com/evgeniy-krivenko/labboard/internal/remote"
	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

type app struct {
	cfg config.ClientConfig

	logLevel string
	pretty   bool

	client *remote.Client
	conn   *grpc.ClientConn
}

func newRootCmd() *cobra.Command {
	a := &app{}

	if cfg, err := config.Parse(); err == nil {
		a.cfg = cfg.Client
		a.logLevel = cfg.App.LogLevel
		a.pretty = cfg.App.Pretty
	} else {
		a.cfg = config.ClientConfig{
			Addr:             "127.0.0.1:50051",
			PollInterval:     board.BoardPollInterval,
			PresenceInterval: board.PresencePollInterval,
			Timeout:          10 * time.Second,
		}
		a.logLevel = "info"
	}

	root := &cobra.Command{
		Use:           "labboard",
		Short:         "Lab memo board client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := slogx.InitGlobal(os.Stderr, a.logLevel, a.pretty); err != nil {
				return fmt.Errorf("init logger: %v", err)
			}
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.conn != nil {
				return a.conn.Close()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Addr, "addr", a.cfg.Addr, "board gRPC address")
	flags.StringVar(&a.cfg.Token, "token", a.cfg.Token, "bearer token")
	flags.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "timeout of a single call")
	flags.StringVar(&a.logLevel, "log-level", a.logLevel, "log level")

	root.AddCommand(
		a.notesCmd(),
		a.createCmd(),
		a.moveCmd(),
		a.connectCmd(),
		a.disconnectCmd(),
		a.deleteCmd(),
		a.tagsCmd(),
		a.viewCmd(),
		a.watchCmd(),
		a.statusCmd(),
		a.addMemberCmd(),
		a.checkInCmd(),
		a.checkOutCmd(),
		studyCmd(),
		tokenCmd(),
	)

	return root
}

func (a *app) remote() (*remote.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	client, conn, err := remote.Dial(a.cfg.Addr, a.cfg.Token)
	if err != nil {
		return nil, err
	}
	a.client, a.conn = client, conn

	return client, nil
}

// board opens a board session over the remote store and loads it.
func (a *app) board(ctx context.Context) (*board.Board, error) {
	client, err := a.remote()
	if err != nil {
		return nil, err
	}

	b, err := board.New(board.NewOptions(client, board.WithMemberSource(client)))
	if err != nil {
		return nil, err
	}

	if err := b.Refresh(ctx); err != nil {
		return nil, err
	}

	return b, nil
}

func (a *app) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.cfg.Timeout)
}
