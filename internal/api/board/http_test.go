package board_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/labboard/internal/ctxtr"
	"github.com/evgeniy-krivenko/labboard/internal/entity"
	v1 "github.com/evgeniy-krivenko/labboard/pkg/api/board/v1"
)

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHTTP_Healthz(t *testing.T) {
	svc, _ := newService(t)

	w := do(t, svc.HTTPHandler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHTTP_NotesAndBoardView(t *testing.T) {
	svc, repo := newService(t)
	h := svc.HTTPHandler()

	w := do(t, h, http.MethodPost, "/api/v1/notes",
		`{"content":"ml paper","tags":["machine-learning"],"color":"blue","position":{"x":0,"y":0},"assignee_ids":["m1"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := decodeBody[v1.CreateNoteResponse](t, w)

	w = do(t, h, http.MethodPost, "/api/v1/notes", `{"content":"other","tags":["other"],"position":{"x":400,"y":0}}`)
	require.Equal(t, http.StatusCreated, w.Code)
	second := decodeBody[v1.CreateNoteResponse](t, w)

	w = do(t, h, http.MethodPost, "/api/v1/connections",
		`{"from_id":"`+first.Note.ID+`","to_id":"`+second.Note.ID+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, h, http.MethodGet, "/api/v1/board", "")
	require.Equal(t, http.StatusOK, w.Code)
	all := decodeBody[v1.BoardView](t, w)
	assert.Len(t, all.Notes, 2)
	assert.Len(t, all.Paths, 1)
	assert.Equal(t, []string{"machine-learning", "other"}, all.Tags)

	w = do(t, h, http.MethodGet, "/api/v1/board?tag=machine-learning", "")
	require.Equal(t, http.StatusOK, w.Code)
	filtered := decodeBody[v1.BoardView](t, w)
	require.Len(t, filtered.Notes, 1)
	assert.Equal(t, first.Note.ID, filtered.Notes[0].Note.ID)
	require.Len(t, filtered.Notes[0].Assignees, 1)
	assert.Equal(t, "Ada", filtered.Notes[0].Assignees[0].Name)
	assert.Empty(t, filtered.Paths)

	w = do(t, h, http.MethodPut, "/api/v1/notes/"+first.Note.ID,
		`{"content":"moved","color":"blue","position":{"x":125,"y":100},"tags":["machine-learning"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err := repo.GetNote(context.Background(), first.Note.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Position{X: 125, Y: 100}, stored.Position)

	w = do(t, h, http.MethodDelete, "/api/v1/notes/"+first.Note.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodGet, "/api/v1/connections", "")
	conns := decodeBody[v1.ListConnectionsResponse](t, w)
	assert.Empty(t, conns.Connections)
}

func TestHTTP_Errors(t *testing.T) {
	svc, _ := newService(t)
	h := svc.HTTPHandler()

	w := do(t, h, http.MethodPost, "/api/v1/notes", `{"content":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPut, "/api/v1/notes/missing", `{"content":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeBody[map[string]string](t, w)
	assert.Equal(t, v1.ReasonNoteNotFound, resp["reason"])

	w = do(t, h, http.MethodPost, "/api/v1/members/m1/checkout", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, h, http.MethodPost, "/api/v1/members/me/checkin", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHTTP_MemberRoutes(t *testing.T) {
	svc, _ := newService(t)
	h := ctxtr.MockAuthMiddleware("m1")(svc.HTTPHandler())

	w := do(t, h, http.MethodPost, "/api/v1/members/me/checkin", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	in := decodeBody[v1.CheckInResponse](t, w)
	assert.Equal(t, "m1", in.Record.MemberID)

	w = do(t, h, http.MethodPut, "/api/v1/members/m1/presence", `{"present":false,"location":"library"}`)
	require.Equal(t, http.StatusOK, w.Code)
	presence := decodeBody[v1.UpdatePresenceResponse](t, w)
	assert.False(t, presence.Member.Present)
	assert.Equal(t, "library", presence.Member.Location)

	w = do(t, h, http.MethodGet, "/api/v1/attendance?member_id=m1", "")
	require.Equal(t, http.StatusOK, w.Code)
	recs := decodeBody[v1.ListAttendanceResponse](t, w)
	assert.Len(t, recs.Records, 1)

	w = do(t, h, http.MethodGet, "/api/v1/members", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[v1.ListMembersResponse](t, w)
	require.Len(t, list.Members, 1)
}

func TestHTTP_AddMember(t *testing.T) {
	svc, _ := newService(t)
	h := svc.HTTPHandler()

	w := do(t, h, http.MethodPost, "/api/v1/members", `{"name":" Grace ","email":"grace@lab.org","role":"Postdoc"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	added := decodeBody[v1.AddMemberResponse](t, w)
	assert.NotEmpty(t, added.Member.ID)
	assert.Equal(t, "Grace", added.Member.Name)
	assert.False(t, added.Member.Present)

	w = do(t, h, http.MethodPost, "/api/v1/members", `{"name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodGet, "/api/v1/members", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[v1.ListMembersResponse](t, w)
	assert.Len(t, list.Members, 2)
}
