package converter

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/internal/repository/postgres/gen"
)

func ConvertNoteToEntity(row gen.Note) entity.Note {
	return entity.Note{
		ID:          row.ID,
		Content:     row.Content,
		Tags:        row.Tags,
		Color:       entity.Color(row.Color),
		Position:    entity.Position{X: row.PosX, Y: row.PosY},
		UpdatedAt:   ConvertTimestampzToTime(row.UpdatedAt),
		AssigneeIDs: row.AssigneeIds,
		Version:     row.Version,
	}.Clone()
}

func ConvertNotesToEntity(rows []gen.Note) []entity.Note {
	out := make([]entity.Note, 0, len(rows))
	for _, row := range rows {
		out = append(out, ConvertNoteToEntity(row))
	}
	return out
}

func ConvertConnectionToEntity(row gen.Connection) entity.Connection {
	return entity.Connection{ID: row.ID, FromID: row.FromID, ToID: row.ToID}
}

func ConvertConnectionsToEntity(rows []gen.Connection) []entity.Connection {
	out := make([]entity.Connection, 0, len(rows))
	for _, row := range rows {
		out = append(out, ConvertConnectionToEntity(row))
	}
	return out
}

func ConvertMemberToEntity(row gen.Member) entity.Member {
	return entity.Member{
		ID:               row.ID,
		Name:             row.Name,
		Email:            row.Email,
		Role:             row.Role,
		Lab:              row.Lab,
		University:       row.University,
		AvatarURL:        row.AvatarUrl,
		Present:          row.Present,
		Location:         row.Location,
		LastStatusChange: ConvertTimestampzToTime(row.LastStatusChange),
		ExpectedReturn:   ConvertTimestampzToTimePtr(row.ExpectedReturn),
	}
}

func ConvertMembersToEntity(rows []gen.Member) []entity.Member {
	out := make([]entity.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, ConvertMemberToEntity(row))
	}
	return out
}

func ConvertAttendanceToEntity(row gen.Attendance) entity.AttendanceRecord {
	return entity.AttendanceRecord{
		ID:       row.ID,
		MemberID: row.MemberID,
		Date:     row.Day,
		CheckIn:  ConvertTimestampzToTimePtr(row.CheckIn),
		CheckOut: ConvertTimestampzToTimePtr(row.CheckOut),
	}
}

func ConvertAttendancesToEntity(rows []gen.Attendance) []entity.AttendanceRecord {
	out := make([]entity.AttendanceRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ConvertAttendanceToEntity(row))
	}
	return out
}

func ConvertTimestampzToTime(t pgtype.Timestamptz) time.Time {
	return t.Time
}

func ConvertTimeToTimestampz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func ConvertTimestampzToTimePtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func ConvertTimePtrToTimestampz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return ConvertTimeToTimestampz(*t)
}
