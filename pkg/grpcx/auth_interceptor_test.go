package grpcx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/evgeniy-krivenko/labboard/pkg/grpcx"
)

type ctxKey struct{}

type tokenAuth struct{ valid string }

func (a tokenAuth) Authenticate(ctx context.Context, token string) (context.Context, error) {
	if token != a.valid {
		return nil, errors.New("bad token")
	}
	return context.WithValue(ctx, ctxKey{}, token), nil
}

func call(ctx context.Context, t *testing.T) (any, error) {
	t.Helper()

	intercept := grpcx.AuthInterceptor(tokenAuth{valid: "good"})
	return intercept(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/test/Method"},
		func(ctx context.Context, _ any) (any, error) {
			return ctx.Value(ctxKey{}), nil
		})
}

func TestAuthInterceptor(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer good"))
	res, err := call(ctx, t)
	require.NoError(t, err)
	assert.Equal(t, "good", res)

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer bad"))
	_, err = call(ctx, t)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = call(context.Background(), t)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestBearerToken(t *testing.T) {
	token, ok := grpcx.BearerToken([]string{"Basic x", "bearer  abc "})
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	_, ok = grpcx.BearerToken([]string{"Bearer "})
	assert.False(t, ok)
}

func TestRecoveryInterceptor(t *testing.T) {
	intercept := grpcx.RecoveryInterceptor()
	_, err := intercept(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/test/Panic"},
		func(context.Context, any) (any, error) { panic("boom") })

	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestNew_Validates(t *testing.T) {
	_, err := grpcx.New(grpcx.NewOptions(":50051"))
	assert.Error(t, err)
}
