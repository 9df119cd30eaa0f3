package grpcx

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

func RecoveryInterceptor() grpc.UnaryServerInterceptor {
	return recovery.UnaryServerInterceptor(
		recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			slogx.Error(ctx, "panic in grpc handler",
				slog.Any("panic", p),
				slog.String("stack", string(debug.Stack())),
			)
			return status.Error(codes.Internal, "internal error")
		}),
	)
}
