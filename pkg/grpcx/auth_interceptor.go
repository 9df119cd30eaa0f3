package grpcx

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Authenticator turns a bearer token into a context carrying the caller.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (context.Context, error)
}

func AuthInterceptor(auth Authenticator) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (res any, err error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "md from incoming request")
		}

		token, ok := BearerToken(md.Get("authorization"))
		if !ok {
			return nil, status.Error(
				codes.Unauthenticated,
				"metadata doesn't contain authorization token",
			)
		}

		ctx, err = auth.Authenticate(ctx, token)
		if err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "authenticate: %v", err)
		}

		return handler(ctx, req)
	}
}

// BearerToken picks the first "Bearer <token>" value.
func BearerToken(headers []string) (string, bool) {
	for _, h := range headers {
		scheme, token, found := strings.Cut(strings.TrimSpace(h), " ")
		if found && strings.EqualFold(scheme, "bearer") && strings.TrimSpace(token) != "" {
			return strings.TrimSpace(token), true
		}
	}
	return "", false
}
