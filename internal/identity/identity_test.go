package identity_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/labboard/internal/ctxtr"
	"github.com/evgeniy-krivenko/labboard/internal/identity"
)

const secret = "0123456789abcdef"

func newService(t *testing.T, now func() time.Time) *identity.Service {
	t.Helper()

	svc, err := identity.New(identity.NewOptions(secret, identity.WithTtl(time.Hour), identity.WithNow(now)))
	require.NoError(t, err)
	return svc
}

func TestService_IssueVerify(t *testing.T) {
	svc := newService(t, time.Now)

	token, err := svc.Issue(ctxtr.Session{MemberID: "user1", Name: "Ada", Email: "ada@lab.org"})
	require.NoError(t, err)

	sess, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, ctxtr.Session{MemberID: "user1", Name: "Ada", Email: "ada@lab.org"}, sess)
}

func TestService_RejectsExpiredAndForeign(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	old := newService(t, func() time.Time { return issuedAt })

	token, err := old.Issue(ctxtr.Session{MemberID: "user1"})
	require.NoError(t, err)

	_, err = newService(t, time.Now).Verify(token)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)

	other, err := identity.New(identity.NewOptions("another-secret-value"))
	require.NoError(t, err)
	foreign, err := other.Issue(ctxtr.Session{MemberID: "user1"})
	require.NoError(t, err)

	_, err = newService(t, time.Now).Verify(foreign)
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestNew_ShortSecret(t *testing.T) {
	_, err := identity.New(identity.NewOptions("short"))
	assert.Error(t, err)
}

func TestService_Middleware(t *testing.T) {
	svc := newService(t, time.Now)
	token, err := svc.Issue(ctxtr.Session{MemberID: "user2"})
	require.NoError(t, err)

	var got string
	h := svc.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ctxtr.MemberID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user2", got)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
