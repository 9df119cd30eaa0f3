package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "board.v1.BoardAPI"

const (
	BoardAPI_ListNotes_FullMethodName        = "/board.v1.BoardAPI/ListNotes"
	BoardAPI_CreateNote_FullMethodName       = "/board.v1.BoardAPI/CreateNote"
	BoardAPI_UpdateNote_FullMethodName       = "/board.v1.BoardAPI/UpdateNote"
	BoardAPI_DeleteNote_FullMethodName       = "/board.v1.BoardAPI/DeleteNote"
	BoardAPI_ListConnections_FullMethodName  = "/board.v1.BoardAPI/ListConnections"
	BoardAPI_CreateConnection_FullMethodName = "/board.v1.BoardAPI/CreateConnection"
	BoardAPI_DeleteConnection_FullMethodName = "/board.v1.BoardAPI/DeleteConnection"
	BoardAPI_ListMembers_FullMethodName      = "/board.v1.BoardAPI/ListMembers"
	BoardAPI_AddMember_FullMethodName        = "/board.v1.BoardAPI/AddMember"
	BoardAPI_UpdatePresence_FullMethodName   = "/board.v1.BoardAPI/UpdatePresence"
	BoardAPI_CheckIn_FullMethodName          = "/board.v1.BoardAPI/CheckIn"
	BoardAPI_CheckOut_FullMethodName         = "/board.v1.BoardAPI/CheckOut"
	BoardAPI_ListAttendance_FullMethodName   = "/board.v1.BoardAPI/ListAttendance"
)

type BoardAPIServer interface {
	ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error)
	CreateNote(context.Context, *CreateNoteRequest) (*CreateNoteResponse, error)
	UpdateNote(context.Context, *UpdateNoteRequest) (*UpdateNoteResponse, error)
	DeleteNote(context.Context, *DeleteNoteRequest) (*DeleteNoteResponse, error)
	ListConnections(context.Context, *ListConnectionsRequest) (*ListConnectionsResponse, error)
	CreateConnection(context.Context, *CreateConnectionRequest) (*CreateConnectionResponse, error)
	DeleteConnection(context.Context, *DeleteConnectionRequest) (*DeleteConnectionResponse, error)
	ListMembers(context.Context, *ListMembersRequest) (*ListMembersResponse, error)
	AddMember(context.Context, *AddMemberRequest) (*AddMemberResponse, error)
	UpdatePresence(context.Context, *UpdatePresenceRequest) (*UpdatePresenceResponse, error)
	CheckIn(context.Context, *CheckInRequest) (*CheckInResponse, error)
	CheckOut(context.Context, *CheckOutRequest) (*CheckOutResponse, error)
	ListAttendance(context.Context, *ListAttendanceRequest) (*ListAttendanceResponse, error)
	mustEmbedUnimplementedBoardAPIServer()
}

// UnimplementedBoardAPIServer must be embedded by implementations.
type UnimplementedBoardAPIServer struct{}

func (UnimplementedBoardAPIServer) ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListNotes not implemented")
}
func (UnimplementedBoardAPIServer) CreateNote(context.Context, *CreateNoteRequest) (*CreateNoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateNote not implemented")
}
func (UnimplementedBoardAPIServer) UpdateNote(context.Context, *UpdateNoteRequest) (*UpdateNoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateNote not implemented")
}
func (UnimplementedBoardAPIServer) DeleteNote(context.Context, *DeleteNoteRequest) (*DeleteNoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteNote not implemented")
}
func (UnimplementedBoardAPIServer) ListConnections(context.Context, *ListConnectionsRequest) (*ListConnectionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListConnections not implemented")
}
func (UnimplementedBoardAPIServer) CreateConnection(context.Context, *CreateConnectionRequest) (*CreateConnectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateConnection not implemented")
}
func (UnimplementedBoardAPIServer) DeleteConnection(context.Context, *DeleteConnectionRequest) (*DeleteConnectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteConnection not implemented")
}
func (UnimplementedBoardAPIServer) ListMembers(context.Context, *ListMembersRequest) (*ListMembersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMembers not implemented")
}
func (UnimplementedBoardAPIServer) AddMember(context.Context, *AddMemberRequest) (*AddMemberResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddMember not implemented")
}
func (UnimplementedBoardAPIServer) UpdatePresence(context.Context, *UpdatePresenceRequest) (*UpdatePresenceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePresence not implemented")
}
func (UnimplementedBoardAPIServer) CheckIn(context.Context, *CheckInRequest) (*CheckInResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckIn not implemented")
}
func (UnimplementedBoardAPIServer) CheckOut(context.Context, *CheckOutRequest) (*CheckOutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckOut not implemented")
}
func (UnimplementedBoardAPIServer) ListAttendance(context.Context, *ListAttendanceRequest) (*ListAttendanceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAttendance not implemented")
}
func (UnimplementedBoardAPIServer) mustEmbedUnimplementedBoardAPIServer() {}

func RegisterBoardAPIServer(s grpc.ServiceRegistrar, srv BoardAPIServer) {
	s.RegisterService(&BoardAPI_ServiceDesc, srv)
}

// unary adapts a typed server method to a grpc.MethodHandler.
func unary[Req, Resp any](
	fullMethod string,
	call func(BoardAPIServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BoardAPIServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(BoardAPIServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var BoardAPI_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BoardAPIServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListNotes", Handler: unary(BoardAPI_ListNotes_FullMethodName, BoardAPIServer.ListNotes)},
		{MethodName: "CreateNote", Handler: unary(BoardAPI_CreateNote_FullMethodName, BoardAPIServer.CreateNote)},
		{MethodName: "UpdateNote", Handler: unary(BoardAPI_UpdateNote_FullMethodName, BoardAPIServer.UpdateNote)},
		{MethodName: "DeleteNote", Handler: unary(BoardAPI_DeleteNote_FullMethodName, BoardAPIServer.DeleteNote)},
		{MethodName: "ListConnections", Handler: unary(BoardAPI_ListConnections_FullMethodName, BoardAPIServer.ListConnections)},
		{MethodName: "CreateConnection", Handler: unary(BoardAPI_CreateConnection_FullMethodName, BoardAPIServer.CreateConnection)},
		{MethodName: "DeleteConnection", Handler: unary(BoardAPI_DeleteConnection_FullMethodName, BoardAPIServer.DeleteConnection)},
		{MethodName: "ListMembers", Handler: unary(BoardAPI_ListMembers_FullMethodName, BoardAPIServer.ListMembers)},
		{MethodName: "AddMember", Handler: unary(BoardAPI_AddMember_FullMethodName, BoardAPIServer.AddMember)},
		{MethodName: "UpdatePresence", Handler: unary(BoardAPI_UpdatePresence_FullMethodName, BoardAPIServer.UpdatePresence)},
		{MethodName: "CheckIn", Handler: unary(BoardAPI_CheckIn_FullMethodName, BoardAPIServer.CheckIn)},
		{MethodName: "CheckOut", Handler: unary(BoardAPI_CheckOut_FullMethodName, BoardAPIServer.CheckOut)},
		{MethodName: "ListAttendance", Handler: unary(BoardAPI_ListAttendance_FullMethodName, BoardAPIServer.ListAttendance)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "board/v1/board.proto",
}

type BoardAPIClient interface {
	ListNotes(ctx context.Context, in *ListNotesRequest, opts ...grpc.CallOption) (*ListNotesResponse, error)
	CreateNote(ctx context.Context, in *CreateNoteRequest, opts ...grpc.CallOption) (*CreateNoteResponse, error)
	UpdateNote(ctx context.Context, in *UpdateNoteRequest, opts ...grpc.CallOption) (*UpdateNoteResponse, error)
	DeleteNote(ctx context.Context, in *DeleteNoteRequest, opts ...grpc.CallOption) (*DeleteNoteResponse, error)
	ListConnections(ctx context.Context, in *ListConnectionsRequest, opts ...grpc.CallOption) (*ListConnectionsResponse, error)
	CreateConnection(ctx context.Context, in *CreateConnectionRequest, opts ...grpc.CallOption) (*CreateConnectionResponse, error)
	DeleteConnection(ctx context.Context, in *DeleteConnectionRequest, opts ...grpc.CallOption) (*DeleteConnectionResponse, error)
	ListMembers(ctx context.Context, in *ListMembersRequest, opts ...grpc.CallOption) (*ListMembersResponse, error)
	AddMember(ctx context.Context, in *AddMemberRequest, opts ...grpc.CallOption) (*AddMemberResponse, error)
	UpdatePresence(ctx context.Context, in *UpdatePresenceRequest, opts ...grpc.CallOption) (*UpdatePresenceResponse, error)
	CheckIn(ctx context.Context, in *CheckInRequest, opts ...grpc.CallOption) (*CheckInResponse, error)
	CheckOut(ctx context.Context, in *CheckOutRequest, opts ...grpc.CallOption) (*CheckOutResponse, error)
	ListAttendance(ctx context.Context, in *ListAttendanceRequest, opts ...grpc.CallOption) (*ListAttendanceResponse, error)
}

type boardAPIClient struct {
	cc grpc.ClientConnInterface
}

func NewBoardAPIClient(cc grpc.ClientConnInterface) BoardAPIClient {
	return &boardAPIClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *boardAPIClient) ListNotes(ctx context.Context, in *ListNotesRequest, opts ...grpc.CallOption) (*ListNotesResponse, error) {
	return invoke[ListNotesResponse](ctx, c.cc, BoardAPI_ListNotes_FullMethodName, in, opts)
}

func (c *boardAPIClient) CreateNote(ctx context.Context, in *CreateNoteRequest, opts ...grpc.CallOption) (*CreateNoteResponse, error) {
	return invoke[CreateNoteResponse](ctx, c.cc, BoardAPI_CreateNote_FullMethodName, in, opts)
}

func (c *boardAPIClient) UpdateNote(ctx context.Context, in *UpdateNoteRequest, opts ...grpc.CallOption) (*UpdateNoteResponse, error) {
	return invoke[UpdateNoteResponse](ctx, c.cc, BoardAPI_UpdateNote_FullMethodName, in, opts)
}

func (c *boardAPIClient) DeleteNote(ctx context.Context, in *DeleteNoteRequest, opts ...grpc.CallOption) (*DeleteNoteResponse, error) {
	return invoke[DeleteNoteResponse](ctx, c.cc, BoardAPI_DeleteNote_FullMethodName, in, opts)
}

func (c *boardAPIClient) ListConnections(ctx context.Context, in *ListConnectionsRequest, opts ...grpc.CallOption) (*ListConnectionsResponse, error) {
	return invoke[ListConnectionsResponse](ctx, c.cc, BoardAPI_ListConnections_FullMethodName, in, opts)
}

func (c *boardAPIClient) CreateConnection(ctx context.Context, in *CreateConnectionRequest, opts ...grpc.CallOption) (*CreateConnectionResponse, error) {
	return invoke[CreateConnectionResponse](ctx, c.cc, BoardAPI_CreateConnection_FullMethodName, in, opts)
}

func (c *boardAPIClient) DeleteConnection(ctx context.Context, in *DeleteConnectionRequest, opts ...grpc.CallOption) (*DeleteConnectionResponse, error) {
	return invoke[DeleteConnectionResponse](ctx, c.cc, BoardAPI_DeleteConnection_FullMethodName, in, opts)
}

func (c *boardAPIClient) ListMembers(ctx context.Context, in *ListMembersRequest, opts ...grpc.CallOption) (*ListMembersResponse, error) {
	return invoke[ListMembersResponse](ctx, c.cc, BoardAPI_ListMembers_FullMethodName, in, opts)
}

func (c *boardAPIClient) AddMember(ctx context.Context, in *AddMemberRequest, opts ...grpc.CallOption) (*AddMemberResponse, error) {
	return invoke[AddMemberResponse](ctx, c.cc, BoardAPI_AddMember_FullMethodName, in, opts)
}

func (c *boardAPIClient) UpdatePresence(ctx context.Context, in *UpdatePresenceRequest, opts ...grpc.CallOption) (*UpdatePresenceResponse, error) {
	return invoke[UpdatePresenceResponse](ctx, c.cc, BoardAPI_UpdatePresence_FullMethodName, in, opts)
}

func (c *boardAPIClient) CheckIn(ctx context.Context, in *CheckInRequest, opts ...grpc.CallOption) (*CheckInResponse, error) {
	return invoke[CheckInResponse](ctx, c.cc, BoardAPI_CheckIn_FullMethodName, in, opts)
}

func (c *boardAPIClient) CheckOut(ctx context.Context, in *CheckOutRequest, opts ...grpc.CallOption) (*CheckOutResponse, error) {
	return invoke[CheckOutResponse](ctx, c.cc, BoardAPI_CheckOut_FullMethodName, in, opts)
}

func (c *boardAPIClient) ListAttendance(ctx context.Context, in *ListAttendanceRequest, opts ...grpc.CallOption) (*ListAttendanceResponse, error) {
	return invoke[ListAttendanceResponse](ctx, c.cc, BoardAPI_ListAttendance_FullMethodName, in, opts)
}
