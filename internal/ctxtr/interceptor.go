package ctxtr

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/grpc"
)

type ctxKey string

const SessionKey ctxKey = "session"

var ErrSessionNotFound = errors.New("session not found")

// Session is the authenticated caller.
type Session struct {
	MemberID  string
	Name      string
	Email     string
	AvatarURL string
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, SessionKey, s)
}

func SessionFrom(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(SessionKey).(Session)
	if !ok || s.MemberID == "" {
		return Session{}, ErrSessionNotFound
	}

	return s, nil
}

func MemberID(ctx context.Context) (string, error) {
	s, err := SessionFrom(ctx)
	if err != nil {
		return "", err
	}

	return s.MemberID, nil
}

// MockAuthInterceptor attaches a fixed member to every call.
func MockAuthInterceptor(memberID string) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		ctx = WithSession(ctx, Session{MemberID: memberID})
		return handler(ctx, req)
	}
}

func MockAuthMiddleware(memberID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), Session{MemberID: memberID})))
		})
	}
}
