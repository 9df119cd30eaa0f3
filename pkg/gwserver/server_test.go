package gwserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/labboard/pkg/gwserver"
)

func TestServer_MiddlewaresAndCORS(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	srv, err := gwserver.New(gwserver.NewOptions(
		"127.0.0.1:8081",
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }),
		gwserver.WithMiddlewares(mw("inner"), mw("outer")),
		gwserver.WithAllowedOrigins("http://localhost:3000"),
	))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestNew_RequiresHandler(t *testing.T) {
	_, err := gwserver.New(gwserver.NewOptions("127.0.0.1:8081", nil))
	assert.Error(t, err)
}
