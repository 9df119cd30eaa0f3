package board

import (
	"context"
	"errors"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/evgeniy-krivenko/labboard/internal/api/board/converter"
	"github.com/evgeniy-krivenko/labboard/internal/board"
	v1 "github.com/evgeniy-krivenko/labboard/pkg/api/board/v1"
	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

const maxBodyBytes = 1 << 20

// me stands for the authenticated member in member paths.
const me = "me"

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// HTTPHandler serves the board API as JSON under /api/v1. Every route goes
// through the gRPC methods so both transports share validation and errors.
func (s *Service) HTTPHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /api/v1/board", s.handleBoard)

	mux.HandleFunc("GET /api/v1/notes", func(w http.ResponseWriter, r *http.Request) {
		resp, err := s.ListNotes(r.Context(), &v1.ListNotesRequest{})
		reply(w, r, http.StatusOK, resp, err)
	})
	mux.HandleFunc("POST /api/v1/notes", func(w http.ResponseWriter, r *http.Request) {
		var req v1.CreateNoteRequest
		if !decode(w, r, &req) {
			return
		}
		resp, err := s.CreateNote(r.Context(), &req)
		reply(w, r, http.StatusCreated, resp, err)
	})
	mux.HandleFunc("PUT /api/v1/notes/{id}", func(w http.ResponseWriter, r *http.Request) {
		var note v1.Note
		if !decode(w, r, &note) {
			return
		}
		note.ID = r.PathValue("id")
		resp, err := s.UpdateNote(r.Context(), &v1.UpdateNoteRequest{Note: &note})
		reply(w, r, http.StatusOK, resp, err)
	})
	mux.HandleFunc("DELETE /api/v1/notes/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, err := s.DeleteNote(r.Context(), &v1.DeleteNoteRequest{NoteID: r.PathValue("id")})
		reply(w, r, http.StatusNoContent, nil, err)
	})

	mux.HandleFunc("GET /api/v1/connections", func(w http.ResponseWriter, r *http.Request) {
		resp, err := s.ListConnections(r.Context(), &v1.ListConnectionsRequest{})
		reply(w, r, http.StatusOK, resp, err)
	})
	mux.HandleFunc("POST /api/v1/connections", func(w http.ResponseWriter, r *http.Request) {
		var req v1.CreateConnectionRequest
		if !decode(w, r, &req) {
			return
		}
		resp, err := s.CreateConnection(r.Context(), &req)
		reply(w, r, http.StatusCreated, resp, err)
	})
	mux.HandleFunc("DELETE /api/v1/connections/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, err := s.DeleteConnection(r.Context(), &v1.DeleteConnectionRequest{ConnectionID: r.PathValue("id")})
		reply(w, r, http.StatusNoContent, nil, err)
	})

	mux.HandleFunc("GET /api/v1/members", func(w http.ResponseWriter, r *http.Request) {
		resp, err := s.ListMembers(r.Context(), &v1.ListMembersRequest{})
		reply(w, r, http.StatusOK, resp, err)
	})
	mux.HandleFunc("POST /api/v1/members", func(w http.ResponseWriter, r *http.Request) {
		var req v1.AddMemberRequest
		if !decode(w, r, &req) {
			return
		}
		resp, err := s.AddMember(r.Context(), &req)
		reply(w, r, http.StatusCreated, resp, err)
	})
	mux.HandleFunc("PUT /api/v1/members/{id}/presence", func(w http.ResponseWriter, r *http.Request) {
		var req v1.UpdatePresenceRequest
		if !decode(w, r, &req) {
			return
		}
		req.MemberID = memberPath(r)
		resp, err := s.UpdatePresence(r.Context(), &req)
		reply(w, r, http.StatusOK, resp, err)
	})
	mux.HandleFunc("POST /api/v1/members/{id}/checkin", func(w http.ResponseWriter, r *http.Request) {
		resp, err := s.CheckIn(r.Context(), &v1.CheckInRequest{MemberID: memberPath(r)})
		reply(w, r, http.StatusOK, resp, err)
	})
	mux.HandleFunc("POST /api/v1/members/{id}/checkout", func(w http.ResponseWriter, r *http.Request) {
		resp, err := s.CheckOut(r.Context(), &v1.CheckOutRequest{MemberID: memberPath(r)})
		reply(w, r, http.StatusOK, resp, err)
	})
	mux.HandleFunc("GET /api/v1/attendance", func(w http.ResponseWriter, r *http.Request) {
		resp, err := s.ListAttendance(r.Context(), &v1.ListAttendanceRequest{MemberID: r.URL.Query().Get("member_id")})
		reply(w, r, http.StatusOK, resp, err)
	})

	return mux
}

// handleBoard renders the board filtered by every ?tag= value.
func (s *Service) handleBoard(w http.ResponseWriter, r *http.Request) {
	var snap board.Snapshot

	eg, ctx := errgroup.WithContext(r.Context())
	eg.Go(func() error {
		notes, err := s.notes.ListNotes(ctx)
		snap.Notes = notes
		return err
	})
	eg.Go(func() error {
		conns, err := s.notes.ListConnections(ctx)
		snap.Connections = conns
		return err
	})
	eg.Go(func() error {
		list, err := s.members.ListMembers(ctx)
		snap.Members = list
		return err
	})
	if err := eg.Wait(); err != nil {
		writeServiceError(w, toStatus(r.Context(), err))
		return
	}

	view := board.Render(snap, r.URL.Query()["tag"])
	writeJSON(w, http.StatusOK, converter.ConvertViewToProto(view))
}

func memberPath(r *http.Request) string {
	id := r.PathValue("id")
	if id == me {
		return ""
	}
	return id
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err == nil && len(body) > 0 {
		err = json.Unmarshal(body, dst)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "decode request body: " + err.Error(),
			Reason: v1.ReasonInvalidArgument,
		})
		return false
	}
	return true
}

func reply(w http.ResponseWriter, r *http.Request, code int, resp any, err error) {
	if err != nil {
		if errors.Is(r.Context().Err(), context.Canceled) {
			return
		}
		writeServiceError(w, err)
		return
	}
	if resp == nil || code == http.StatusNoContent {
		w.WriteHeader(code)
		return
	}
	writeJSON(w, code, resp)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slogx.Warn(context.Background(), "write json response", slogx.Err(err))
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	st := status.Convert(err)
	reason, _ := v1.ErrorReason(err)

	if st.Code() == codes.Unavailable {
		w.Header().Set("Retry-After", "1")
	}
	writeJSON(w, httpStatus(st.Code()), errorResponse{Error: st.Message(), Reason: reason})
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.FailedPrecondition, codes.AlreadyExists:
		return http.StatusConflict
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
