package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/evgeniy-krivenko/labboard/internal/api/board/converter"
	"github.com/evgeniy-krivenko/labboard/internal/ctxtr"
	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/internal/usecase/members"
	v1 "github.com/evgeniy-krivenko/labboard/pkg/api/board/v1"
	"github.com/evgeniy-krivenko/labboard/pkg/grpcx"
	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

const retryDelay = time.Second

var _ grpcx.Service = (*Service)(nil)

type notesUsecase interface {
	ListNotes(ctx context.Context) ([]entity.Note, error)
	CreateNote(ctx context.Context, draft entity.NoteDraft) (entity.Note, error)
	UpdateNote(ctx context.Context, note entity.Note) (entity.Note, error)
	DeleteNote(ctx context.Context, id string) error

	ListConnections(ctx context.Context) ([]entity.Connection, error)
	CreateConnection(ctx context.Context, fromID, toID string) (entity.Connection, error)
	DeleteConnection(ctx context.Context, id string) error
}

type membersUsecase interface {
	ListMembers(ctx context.Context) ([]entity.Member, error)
	AddMember(ctx context.Context, in members.NewMember) (entity.Member, error)
	UpdatePresence(ctx context.Context, id string, p members.Presence) (entity.Member, error)
	CheckIn(ctx context.Context, memberID string) (entity.AttendanceRecord, error)
	CheckOut(ctx context.Context, memberID string) (entity.AttendanceRecord, error)
	ListAttendance(ctx context.Context, memberID string) ([]entity.AttendanceRecord, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	notes   notesUsecase   `option:"mandatory" validate:"required"`
	members membersUsecase `option:"mandatory" validate:"required"`
}

type Service struct {
	v1.UnimplementedBoardAPIServer
	Options
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate board service options: %v", err)
	}

	return &Service{Options: opts}, nil
}

// RegisterService implements grpcx.Service.
func (s *Service) RegisterService(r grpc.ServiceRegistrar) {
	v1.RegisterBoardAPIServer(r, s)
}

func (s *Service) ListNotes(ctx context.Context, _ *v1.ListNotesRequest) (*v1.ListNotesResponse, error) {
	notes, err := s.notes.ListNotes(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.ListNotesResponse{Notes: converter.ConvertNotesToProto(notes)}, nil
}

func (s *Service) CreateNote(ctx context.Context, req *v1.CreateNoteRequest) (*v1.CreateNoteResponse, error) {
	note, err := s.notes.CreateNote(ctx, converter.ConvertCreateNoteRequestToDraft(req))
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.CreateNoteResponse{Note: converter.ConvertNoteToProto(note)}, nil
}

func (s *Service) UpdateNote(ctx context.Context, req *v1.UpdateNoteRequest) (*v1.UpdateNoteResponse, error) {
	if req.Note == nil {
		return nil, invalidArgument("note is required")
	}

	note, err := s.notes.UpdateNote(ctx, converter.ConvertNoteToEntity(req.Note))
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.UpdateNoteResponse{Note: converter.ConvertNoteToProto(note)}, nil
}

func (s *Service) DeleteNote(ctx context.Context, req *v1.DeleteNoteRequest) (*v1.DeleteNoteResponse, error) {
	if strings.TrimSpace(req.NoteID) == "" {
		return nil, invalidArgument("note_id is required")
	}

	if err := s.notes.DeleteNote(ctx, req.NoteID); err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.DeleteNoteResponse{}, nil
}

func (s *Service) ListConnections(ctx context.Context, _ *v1.ListConnectionsRequest) (*v1.ListConnectionsResponse, error) {
	conns, err := s.notes.ListConnections(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.ListConnectionsResponse{Connections: converter.ConvertConnectionsToProto(conns)}, nil
}

func (s *Service) CreateConnection(ctx context.Context, req *v1.CreateConnectionRequest) (*v1.CreateConnectionResponse, error) {
	conn, err := s.notes.CreateConnection(ctx, req.FromID, req.ToID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.CreateConnectionResponse{Connection: converter.ConvertConnectionToProto(conn)}, nil
}

func (s *Service) DeleteConnection(ctx context.Context, req *v1.DeleteConnectionRequest) (*v1.DeleteConnectionResponse, error) {
	if strings.TrimSpace(req.ConnectionID) == "" {
		return nil, invalidArgument("connection_id is required")
	}

	if err := s.notes.DeleteConnection(ctx, req.ConnectionID); err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.DeleteConnectionResponse{}, nil
}

func (s *Service) ListMembers(ctx context.Context, _ *v1.ListMembersRequest) (*v1.ListMembersResponse, error) {
	list, err := s.members.ListMembers(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.ListMembersResponse{Members: converter.ConvertMembersToProto(list)}, nil
}

func (s *Service) AddMember(ctx context.Context, req *v1.AddMemberRequest) (*v1.AddMemberResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalidArgument("name is required")
	}

	m, err := s.members.AddMember(ctx, members.NewMember{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Lab:        req.Lab,
		University: req.University,
		AvatarURL:  req.AvatarURL,
	})
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.AddMemberResponse{Member: converter.ConvertMemberToProto(m)}, nil
}

func (s *Service) UpdatePresence(ctx context.Context, req *v1.UpdatePresenceRequest) (*v1.UpdatePresenceResponse, error) {
	id, err := memberOrCaller(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}

	m, err := s.members.UpdatePresence(ctx, id, members.Presence{
		Present:        req.Present,
		Location:       req.Location,
		ExpectedReturn: converter.ConvertDateTimeToTimePtr(req.ExpectedReturn),
	})
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.UpdatePresenceResponse{Member: converter.ConvertMemberToProto(m)}, nil
}

func (s *Service) CheckIn(ctx context.Context, req *v1.CheckInRequest) (*v1.CheckInResponse, error) {
	id, err := memberOrCaller(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}

	rec, err := s.members.CheckIn(ctx, id)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.CheckInResponse{Record: converter.ConvertAttendanceToProto(rec)}, nil
}

func (s *Service) CheckOut(ctx context.Context, req *v1.CheckOutRequest) (*v1.CheckOutResponse, error) {
	id, err := memberOrCaller(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}

	rec, err := s.members.CheckOut(ctx, id)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.CheckOutResponse{Record: converter.ConvertAttendanceToProto(rec)}, nil
}

func (s *Service) ListAttendance(ctx context.Context, req *v1.ListAttendanceRequest) (*v1.ListAttendanceResponse, error) {
	recs, err := s.members.ListAttendance(ctx, req.MemberID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &v1.ListAttendanceResponse{Records: converter.ConvertAttendancesToProto(recs)}, nil
}

// memberOrCaller falls back to the authenticated member.
func memberOrCaller(ctx context.Context, id string) (string, error) {
	if id = strings.TrimSpace(id); id != "" {
		return id, nil
	}

	id, err := ctxtr.MemberID(ctx)
	if err != nil {
		return "", status.Error(codes.Unauthenticated, "member_id is empty and the caller is unknown")
	}
	return id, nil
}

func invalidArgument(msg string) error {
	return withReason(codes.InvalidArgument, v1.ReasonInvalidArgument, msg)
}

func withReason(code codes.Code, reason, msg string) error {
	st, err := status.New(code, msg).WithDetails(&errdetails.ErrorInfo{
		Reason: reason,
		Domain: v1.ErrorDomain,
	})
	if err != nil {
		return status.Error(code, msg)
	}
	return st.Err()
}

// toStatus maps domain errors to gRPC statuses. Anything unknown is reported
// as Unavailable with a retry hint.
func toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, entity.ErrNoteNotFound):
		return withReason(codes.NotFound, v1.ReasonNoteNotFound, err.Error())
	case errors.Is(err, entity.ErrConnectionNotFound):
		return withReason(codes.NotFound, v1.ReasonConnectionNotFound, err.Error())
	case errors.Is(err, entity.ErrMemberNotFound):
		return withReason(codes.NotFound, v1.ReasonMemberNotFound, err.Error())
	case errors.Is(err, entity.ErrAttendanceNotFound):
		return withReason(codes.FailedPrecondition, v1.ReasonAttendanceNotFound, err.Error())
	case errors.Is(err, entity.ErrSelfConnection):
		return withReason(codes.InvalidArgument, v1.ReasonSelfConnection, err.Error())
	case errors.Is(err, entity.ErrInvalidNote), errors.Is(err, entity.ErrInvalidMember):
		return withReason(codes.InvalidArgument, v1.ReasonInvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	slogx.Error(ctx, "board store failed", slogx.Err(err))

	st, detailErr := status.New(codes.Unavailable, "board store is unavailable").WithDetails(&errdetails.RetryInfo{
		RetryDelay: durationpb.New(retryDelay),
	})
	if detailErr != nil {
		return status.Error(codes.Unavailable, "board store is unavailable")
	}
	return st.Err()
}
