package v1

import "google.golang.org/genproto/googleapis/type/datetime"

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Note struct {
	ID          string             `json:"id"`
	Content     string             `json:"content"`
	Tags        []string           `json:"tags"`
	Color       string             `json:"color"`
	Position    Position           `json:"position"`
	UpdatedAt   *datetime.DateTime `json:"updated_at,omitempty"`
	AssigneeIDs []string           `json:"assignee_ids"`
	Version     int64              `json:"version"`
}

type Connection struct {
	ID     string `json:"id"`
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
}

type Member struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Email            string             `json:"email,omitempty"`
	Role             string             `json:"role,omitempty"`
	Lab              string             `json:"lab,omitempty"`
	University       string             `json:"university,omitempty"`
	AvatarURL        string             `json:"avatar_url,omitempty"`
	Present          bool               `json:"present"`
	Location         string             `json:"location"`
	LastStatusChange *datetime.DateTime `json:"last_status_change,omitempty"`
	ExpectedReturn   *datetime.DateTime `json:"expected_return,omitempty"`
}

type AttendanceRecord struct {
	ID       string             `json:"id"`
	MemberID string             `json:"member_id"`
	Date     string             `json:"date"`
	CheckIn  *datetime.DateTime `json:"check_in,omitempty"`
	CheckOut *datetime.DateTime `json:"check_out,omitempty"`
}

type ListNotesRequest struct{}

type ListNotesResponse struct {
	Notes []*Note `json:"notes"`
}

type CreateNoteRequest struct {
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Color       string   `json:"color"`
	Position    Position `json:"position"`
	AssigneeIDs []string `json:"assignee_ids"`
}

type CreateNoteResponse struct {
	Note *Note `json:"note"`
}

type UpdateNoteRequest struct {
	Note *Note `json:"note"`
}

type UpdateNoteResponse struct {
	Note *Note `json:"note"`
}

type DeleteNoteRequest struct {
	NoteID string `json:"note_id"`
}

type DeleteNoteResponse struct{}

type ListConnectionsRequest struct{}

type ListConnectionsResponse struct {
	Connections []*Connection `json:"connections"`
}

type CreateConnectionRequest struct {
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
}

type CreateConnectionResponse struct {
	Connection *Connection `json:"connection"`
}

type DeleteConnectionRequest struct {
	ConnectionID string `json:"connection_id"`
}

type DeleteConnectionResponse struct{}

type ListMembersRequest struct{}

type ListMembersResponse struct {
	Members []*Member `json:"members"`
}

type AddMemberRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role,omitempty"`
	Lab        string `json:"lab,omitempty"`
	University string `json:"university,omitempty"`
	AvatarURL  string `json:"avatar_url,omitempty"`
}

type AddMemberResponse struct {
	Member *Member `json:"member"`
}

type UpdatePresenceRequest struct {
	MemberID       string             `json:"member_id"`
	Present        bool               `json:"present"`
	Location       string             `json:"location"`
	ExpectedReturn *datetime.DateTime `json:"expected_return,omitempty"`
}

type UpdatePresenceResponse struct {
	Member *Member `json:"member"`
}

// CheckInRequest falls back to the caller's member id when MemberID is empty.
type CheckInRequest struct {
	MemberID string `json:"member_id"`
}

type CheckInResponse struct {
	Record *AttendanceRecord `json:"record"`
}

type CheckOutRequest struct {
	MemberID string `json:"member_id"`
}

type CheckOutResponse struct {
	Record *AttendanceRecord `json:"record"`
}

// ListAttendanceRequest lists everyone when MemberID is empty.
type ListAttendanceRequest struct {
	MemberID string `json:"member_id"`
}

type ListAttendanceResponse struct {
	Records []*AttendanceRecord `json:"records"`
}

// BoardView is the rendered board: visible notes with their assignees,
// connection curves between visible notes and every tag on the board.
type BoardView struct {
	Scale        float64      `json:"scale"`
	Tags         []string     `json:"tags"`
	SelectedTags []string     `json:"selected_tags"`
	Notes        []*BoardNote `json:"notes"`
	Paths        []*Path      `json:"paths"`
}

type BoardNote struct {
	Note      *Note     `json:"note"`
	Assignees []*Member `json:"assignees"`
}

type Path struct {
	ConnectionID string   `json:"connection_id"`
	FromID       string   `json:"from_id"`
	ToID         string   `json:"to_id"`
	Start        Position `json:"start"`
	Control      Position `json:"control"`
	End          Position `json:"end"`
	Handle       Position `json:"handle"`
}
