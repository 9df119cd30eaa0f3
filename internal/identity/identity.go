package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/evgeniy-krivenko/labboard/internal/ctxtr"
	"github.com/evgeniy-krivenko/labboard/pkg/grpcx"
	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

const issuer = "labboard"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims

	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=identity_options.gen.go -from-struct=Options
type Options struct {
	secret string `option:"mandatory" validate:"required,min=8"`

	ttl time.Duration `default:"24h" validate:"min=1m"`
	now func() time.Time
}

// Service issues and verifies HS256 session tokens. The subject is the member id.
type Service struct {
	Options
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate identity options: %v", err)
	}

	if opts.now == nil {
		opts.now = time.Now
	}

	return &Service{Options: opts}, nil
}

func (s *Service) Issue(sess ctxtr.Session) (string, error) {
	if sess.MemberID == "" {
		return "", fmt.Errorf("issue token: %w: empty member id", ErrInvalidToken)
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sess.MemberID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Name:      sess.Name,
		Email:     sess.Email,
		AvatarURL: sess.AvatarURL,
	})

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %v", err)
	}

	return signed, nil
}

func (s *Service) Verify(raw string) (ctxtr.Session, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return []byte(s.secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return ctxtr.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return ctxtr.Session{}, ErrInvalidToken
	}

	return ctxtr.Session{
		MemberID:  claims.Subject,
		Name:      claims.Name,
		Email:     claims.Email,
		AvatarURL: claims.AvatarURL,
	}, nil
}

func (s *Service) Authenticate(ctx context.Context, token string) (context.Context, error) {
	sess, err := s.Verify(token)
	if err != nil {
		return nil, err
	}

	return ctxtr.WithSession(ctx, sess), nil
}

// Middleware rejects requests without a valid bearer token.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := grpcx.BearerToken(r.Header.Values("Authorization"))
		if !ok {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		ctx, err := s.Authenticate(r.Context(), token)
		if err != nil {
			slogx.Debug(r.Context(), "reject request", slogx.Err(err))
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
