package remote

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/evgeniy-krivenko/labboard/internal/api/board/converter"
	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/internal/usecase/members"
	v1 "github.com/evgeniy-krivenko/labboard/pkg/api/board/v1"
)

// Client is a board store and member source backed by the board gRPC API.
type Client struct {
	api v1.BoardAPIClient
}

func New(api v1.BoardAPIClient) *Client {
	return &Client{api: api}
}

// Dial connects to addr without TLS. A non-empty token is sent as a bearer
// token on every call.
func Dial(addr, token string, opts ...grpc.DialOption) (*Client, *grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(BearerInterceptor(token)),
	}, opts...)

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("new client conn: %v", err)
	}

	return New(v1.NewBoardAPIClient(conn)), conn, nil
}

func BearerInterceptor(token string) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if token != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func (c *Client) ListNotes(ctx context.Context) ([]entity.Note, error) {
	resp, err := c.api.ListNotes(ctx, &v1.ListNotesRequest{})
	if err != nil {
		return nil, fromStatus("list notes", err)
	}
	return converter.ConvertNotesToEntity(resp.Notes), nil
}

func (c *Client) CreateNote(ctx context.Context, draft entity.NoteDraft) (entity.Note, error) {
	resp, err := c.api.CreateNote(ctx, converter.ConvertDraftToCreateNoteRequest(draft))
	if err != nil {
		return entity.Note{}, fromStatus("create note", err)
	}
	return converter.ConvertNoteToEntity(resp.Note), nil
}

func (c *Client) UpdateNote(ctx context.Context, note entity.Note) (entity.Note, error) {
	resp, err := c.api.UpdateNote(ctx, &v1.UpdateNoteRequest{Note: converter.ConvertNoteToProto(note)})
	if err != nil {
		return entity.Note{}, fromStatus("update note", err)
	}
	return converter.ConvertNoteToEntity(resp.Note), nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	if _, err := c.api.DeleteNote(ctx, &v1.DeleteNoteRequest{NoteID: id}); err != nil {
		return fromStatus("delete note", err)
	}
	return nil
}

func (c *Client) ListConnections(ctx context.Context) ([]entity.Connection, error) {
	resp, err := c.api.ListConnections(ctx, &v1.ListConnectionsRequest{})
	if err != nil {
		return nil, fromStatus("list connections", err)
	}
	return converter.ConvertConnectionsToEntity(resp.Connections), nil
}

func (c *Client) CreateConnection(ctx context.Context, fromID, toID string) (entity.Connection, error) {
	resp, err := c.api.CreateConnection(ctx, &v1.CreateConnectionRequest{FromID: fromID, ToID: toID})
	if err != nil {
		return entity.Connection{}, fromStatus("create connection", err)
	}
	return converter.ConvertConnectionToEntity(resp.Connection), nil
}

func (c *Client) DeleteConnection(ctx context.Context, id string) error {
	if _, err := c.api.DeleteConnection(ctx, &v1.DeleteConnectionRequest{ConnectionID: id}); err != nil {
		return fromStatus("delete connection", err)
	}
	return nil
}

func (c *Client) ListMembers(ctx context.Context) ([]entity.Member, error) {
	resp, err := c.api.ListMembers(ctx, &v1.ListMembersRequest{})
	if err != nil {
		return nil, fromStatus("list members", err)
	}
	return converter.ConvertMembersToEntity(resp.Members), nil
}

func (c *Client) AddMember(ctx context.Context, in members.NewMember) (entity.Member, error) {
	resp, err := c.api.AddMember(ctx, &v1.AddMemberRequest{
		Name:       in.Name,
		Email:      in.Email,
		Role:       in.Role,
		Lab:        in.Lab,
		University: in.University,
		AvatarURL:  in.AvatarURL,
	})
	if err != nil {
		return entity.Member{}, fromStatus("add member", err)
	}
	return converter.ConvertMemberToEntity(resp.Member), nil
}

func (c *Client) UpdatePresence(ctx context.Context, id string, p members.Presence) (entity.Member, error) {
	resp, err := c.api.UpdatePresence(ctx, &v1.UpdatePresenceRequest{
		MemberID:       id,
		Present:        p.Present,
		Location:       p.Location,
		ExpectedReturn: converter.ConvertTimePtrToDateTime(p.ExpectedReturn),
	})
	if err != nil {
		return entity.Member{}, fromStatus("update presence", err)
	}
	return converter.ConvertMemberToEntity(resp.Member), nil
}

// CheckIn checks in memberID, or the caller when it is empty.
func (c *Client) CheckIn(ctx context.Context, memberID string) (entity.AttendanceRecord, error) {
	resp, err := c.api.CheckIn(ctx, &v1.CheckInRequest{MemberID: memberID})
	if err != nil {
		return entity.AttendanceRecord{}, fromStatus("check in", err)
	}
	return converter.ConvertAttendanceToEntity(resp.Record), nil
}

func (c *Client) CheckOut(ctx context.Context, memberID string) (entity.AttendanceRecord, error) {
	resp, err := c.api.CheckOut(ctx, &v1.CheckOutRequest{MemberID: memberID})
	if err != nil {
		return entity.AttendanceRecord{}, fromStatus("check out", err)
	}
	return converter.ConvertAttendanceToEntity(resp.Record), nil
}

func (c *Client) ListAttendance(ctx context.Context, memberID string) ([]entity.AttendanceRecord, error) {
	resp, err := c.api.ListAttendance(ctx, &v1.ListAttendanceRequest{MemberID: memberID})
	if err != nil {
		return nil, fromStatus("list attendance", err)
	}
	return converter.ConvertAttendancesToEntity(resp.Records), nil
}

// fromStatus turns API error reasons back into domain errors.
func fromStatus(op string, err error) error {
	reason, _ := v1.ErrorReason(err)

	var target error
	switch reason {
	case v1.ReasonNoteNotFound:
		target = entity.ErrNoteNotFound
	case v1.ReasonConnectionNotFound:
		target = entity.ErrConnectionNotFound
	case v1.ReasonMemberNotFound:
		target = entity.ErrMemberNotFound
	case v1.ReasonAttendanceNotFound:
		target = entity.ErrAttendanceNotFound
	case v1.ReasonSelfConnection:
		target = entity.ErrSelfConnection
	case v1.ReasonInvalidArgument:
		target = entity.ErrInvalidNote
	default:
		return fmt.Errorf("remote %s: %w", op, err)
	}

	return fmt.Errorf("remote %s: %w: %v", op, target, err)
}
