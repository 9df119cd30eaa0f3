package converter

import (
	"time"

	"google.golang.org/genproto/googleapis/type/datetime"

	"github.com/evgeniy-krivenko/labboard/internal/board"
	"github.com/evgeniy-krivenko/labboard/internal/entity"
	v1 "github.com/evgeniy-krivenko/labboard/pkg/api/board/v1"
)

// ConvertTimeToDateTime always writes UTC wall time.
func ConvertTimeToDateTime(t time.Time) *datetime.DateTime {
	if t.IsZero() {
		return nil
	}
	t = t.UTC()

	return &datetime.DateTime{
		Year:    int32(t.Year()),
		Month:   int32(t.Month()),
		Day:     int32(t.Day()),
		Hours:   int32(t.Hour()),
		Minutes: int32(t.Minute()),
		Seconds: int32(t.Second()),
		Nanos:   int32(t.Nanosecond()),
	}
}

func ConvertDateTimeToTime(dt *datetime.DateTime) time.Time {
	if dt == nil {
		return time.Time{}
	}

	return time.Date(
		int(dt.Year),
		time.Month(dt.Month),
		int(dt.Day),
		int(dt.Hours),
		int(dt.Minutes),
		int(dt.Seconds),
		int(dt.Nanos),
		time.UTC,
	)
}

func ConvertTimePtrToDateTime(t *time.Time) *datetime.DateTime {
	if t == nil {
		return nil
	}
	return ConvertTimeToDateTime(*t)
}

func ConvertDateTimeToTimePtr(dt *datetime.DateTime) *time.Time {
	if dt == nil {
		return nil
	}
	t := ConvertDateTimeToTime(dt)
	return &t
}

func ConvertPositionToProto(p entity.Position) v1.Position {
	return v1.Position{X: p.X, Y: p.Y}
}

func ConvertPositionToEntity(p v1.Position) entity.Position {
	return entity.Position{X: p.X, Y: p.Y}
}

func ConvertNoteToProto(note entity.Note) *v1.Note {
	return &v1.Note{
		ID:          note.ID,
		Content:     note.Content,
		Tags:        nonNil(note.Tags),
		Color:       string(note.Color),
		Position:    ConvertPositionToProto(note.Position),
		UpdatedAt:   ConvertTimeToDateTime(note.UpdatedAt),
		AssigneeIDs: nonNil(note.AssigneeIDs),
		Version:     note.Version,
	}
}

func ConvertNotesToProto(notes []entity.Note) []*v1.Note {
	out := make([]*v1.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, ConvertNoteToProto(n))
	}
	return out
}

func ConvertNoteToEntity(note *v1.Note) entity.Note {
	if note == nil {
		return entity.Note{}
	}

	return entity.Note{
		ID:          note.ID,
		Content:     note.Content,
		Tags:        nonNil(note.Tags),
		Color:       entity.ParseColor(note.Color),
		Position:    ConvertPositionToEntity(note.Position),
		UpdatedAt:   ConvertDateTimeToTime(note.UpdatedAt),
		AssigneeIDs: note.AssigneeIDs,
		Version:     note.Version,
	}
}

func ConvertNotesToEntity(notes []*v1.Note) []entity.Note {
	out := make([]entity.Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, ConvertNoteToEntity(n))
	}
	return out
}

func ConvertCreateNoteRequestToDraft(req *v1.CreateNoteRequest) entity.NoteDraft {
	return entity.NoteDraft{
		Content:     req.Content,
		Tags:        req.Tags,
		Color:       entity.Color(req.Color),
		Position:    ConvertPositionToEntity(req.Position),
		AssigneeIDs: req.AssigneeIDs,
	}
}

func ConvertDraftToCreateNoteRequest(d entity.NoteDraft) *v1.CreateNoteRequest {
	return &v1.CreateNoteRequest{
		Content:     d.Content,
		Tags:        nonNil(d.Tags),
		Color:       string(d.Color),
		Position:    ConvertPositionToProto(d.Position),
		AssigneeIDs: d.AssigneeIDs,
	}
}

func ConvertConnectionToProto(c entity.Connection) *v1.Connection {
	return &v1.Connection{ID: c.ID, FromID: c.FromID, ToID: c.ToID}
}

func ConvertConnectionsToProto(conns []entity.Connection) []*v1.Connection {
	out := make([]*v1.Connection, 0, len(conns))
	for _, c := range conns {
		out = append(out, ConvertConnectionToProto(c))
	}
	return out
}

func ConvertConnectionToEntity(c *v1.Connection) entity.Connection {
	if c == nil {
		return entity.Connection{}
	}
	return entity.Connection{ID: c.ID, FromID: c.FromID, ToID: c.ToID}
}

func ConvertConnectionsToEntity(conns []*v1.Connection) []entity.Connection {
	out := make([]entity.Connection, 0, len(conns))
	for _, c := range conns {
		out = append(out, ConvertConnectionToEntity(c))
	}
	return out
}

func ConvertMemberToProto(m entity.Member) *v1.Member {
	return &v1.Member{
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		Role:             m.Role,
		Lab:              m.Lab,
		University:       m.University,
		AvatarURL:        m.AvatarURL,
		Present:          m.Present,
		Location:         m.Location,
		LastStatusChange: ConvertTimeToDateTime(m.LastStatusChange),
		ExpectedReturn:   ConvertTimePtrToDateTime(m.ExpectedReturn),
	}
}

func ConvertMembersToProto(members []entity.Member) []*v1.Member {
	out := make([]*v1.Member, 0, len(members))
	for _, m := range members {
		out = append(out, ConvertMemberToProto(m))
	}
	return out
}

func ConvertMemberToEntity(m *v1.Member) entity.Member {
	if m == nil {
		return entity.Member{}
	}

	return entity.Member{
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		Role:             m.Role,
		Lab:              m.Lab,
		University:       m.University,
		AvatarURL:        m.AvatarURL,
		Present:          m.Present,
		Location:         m.Location,
		LastStatusChange: ConvertDateTimeToTime(m.LastStatusChange),
		ExpectedReturn:   ConvertDateTimeToTimePtr(m.ExpectedReturn),
	}
}

func ConvertMembersToEntity(members []*v1.Member) []entity.Member {
	out := make([]entity.Member, 0, len(members))
	for _, m := range members {
		out = append(out, ConvertMemberToEntity(m))
	}
	return out
}

func ConvertAttendanceToProto(r entity.AttendanceRecord) *v1.AttendanceRecord {
	return &v1.AttendanceRecord{
		ID:       r.ID,
		MemberID: r.MemberID,
		Date:     r.Date,
		CheckIn:  ConvertTimePtrToDateTime(r.CheckIn),
		CheckOut: ConvertTimePtrToDateTime(r.CheckOut),
	}
}

func ConvertAttendancesToProto(recs []entity.AttendanceRecord) []*v1.AttendanceRecord {
	out := make([]*v1.AttendanceRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, ConvertAttendanceToProto(r))
	}
	return out
}

func ConvertAttendanceToEntity(r *v1.AttendanceRecord) entity.AttendanceRecord {
	if r == nil {
		return entity.AttendanceRecord{}
	}

	return entity.AttendanceRecord{
		ID:       r.ID,
		MemberID: r.MemberID,
		Date:     r.Date,
		CheckIn:  ConvertDateTimeToTimePtr(r.CheckIn),
		CheckOut: ConvertDateTimeToTimePtr(r.CheckOut),
	}
}

func ConvertAttendancesToEntity(recs []*v1.AttendanceRecord) []entity.AttendanceRecord {
	out := make([]entity.AttendanceRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, ConvertAttendanceToEntity(r))
	}
	return out
}

func ConvertPathToProto(p board.Path) *v1.Path {
	return &v1.Path{
		ConnectionID: p.ConnectionID,
		FromID:       p.FromID,
		ToID:         p.ToID,
		Start:        ConvertPositionToProto(p.Start),
		Control:      ConvertPositionToProto(p.Control),
		End:          ConvertPositionToProto(p.End),
		Handle:       ConvertPositionToProto(p.Handle),
	}
}

func ConvertViewToProto(v board.View) *v1.BoardView {
	out := &v1.BoardView{
		Scale:        v.Scale,
		Tags:         nonNil(v.Tags),
		SelectedTags: nonNil(v.SelectedTags),
		Notes:        make([]*v1.BoardNote, 0, len(v.Notes)),
		Paths:        make([]*v1.Path, 0, len(v.Paths)),
	}

	for _, n := range v.Notes {
		out.Notes = append(out.Notes, &v1.BoardNote{
			Note:      ConvertNoteToProto(n.Note),
			Assignees: ConvertMembersToProto(n.Assignees),
		})
	}
	for _, p := range v.Paths {
		out.Paths = append(out.Paths, ConvertPathToProto(p))
	}

	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
