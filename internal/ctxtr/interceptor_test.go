package ctxtr_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/evgeniy-krivenko/labboard/internal/ctxtr"
)

func TestMemberID(t *testing.T) {
	_, err := ctxtr.MemberID(context.Background())
	assert.ErrorIs(t, err, ctxtr.ErrSessionNotFound)

	ctx := ctxtr.WithSession(context.Background(), ctxtr.Session{MemberID: "user1", Name: "Ada"})
	id, err := ctxtr.MemberID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user1", id)
}

func TestMockAuthInterceptor(t *testing.T) {
	res, err := ctxtr.MockAuthInterceptor("user2")(
		context.Background(), nil, &grpc.UnaryServerInfo{},
		func(ctx context.Context, _ any) (any, error) { return ctxtr.MemberID(ctx) },
	)
	require.NoError(t, err)
	assert.Equal(t, "user2", res)
}

func TestMockAuthMiddleware(t *testing.T) {
	var got string
	h := ctxtr.MockAuthMiddleware("user3")(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = ctxtr.MemberID(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "user3", got)
}
