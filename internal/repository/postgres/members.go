package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/internal/repository/postgres/converter"
	"github.com/evgeniy-krivenko/labboard/internal/repository/postgres/gen"
)

func (r *Repo) ListMembers(ctx context.Context) ([]entity.Member, error) {
	rows, err := r.q.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %v", err)
	}

	return converter.ConvertMembersToEntity(rows), nil
}

func (r *Repo) GetMember(ctx context.Context, id string) (entity.Member, error) {
	row, err := r.q.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Member{}, entity.ErrMemberNotFound
		}
		return entity.Member{}, fmt.Errorf("get member: %v", err)
	}

	return converter.ConvertMemberToEntity(row), nil
}

func (r *Repo) SaveMember(ctx context.Context, m entity.Member) (entity.Member, error) {
	if m.LastStatusChange.IsZero() {
		m.LastStatusChange = time.Now().UTC()
	}

	row, err := r.q.UpsertMember(ctx, gen.UpsertMemberParams{
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		Role:             m.Role,
		Lab:              m.Lab,
		University:       m.University,
		AvatarUrl:        m.AvatarURL,
		Present:          m.Present,
		Location:         m.Location,
		LastStatusChange: converter.ConvertTimeToTimestampz(m.LastStatusChange),
		ExpectedReturn:   converter.ConvertTimePtrToTimestampz(m.ExpectedReturn),
	})
	if err != nil {
		return entity.Member{}, fmt.Errorf("save member: %v", err)
	}

	return converter.ConvertMemberToEntity(row), nil
}

func (r *Repo) ListAttendance(ctx context.Context, memberID string) ([]entity.AttendanceRecord, error) {
	var (
		rows []gen.Attendance
		err  error
	)
	if memberID == "" {
		rows, err = r.q.ListAttendance(ctx)
	} else {
		rows, err = r.q.ListAttendanceByMember(ctx, memberID)
	}
	if err != nil {
		return nil, fmt.Errorf("list attendance: %v", err)
	}

	return converter.ConvertAttendancesToEntity(rows), nil
}

func (r *Repo) GetAttendance(ctx context.Context, memberID, date string) (entity.AttendanceRecord, error) {
	row, err := r.q.GetAttendance(ctx, gen.GetAttendanceParams{MemberID: memberID, Day: date})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.AttendanceRecord{}, entity.ErrAttendanceNotFound
		}
		return entity.AttendanceRecord{}, fmt.Errorf("get attendance: %v", err)
	}

	return converter.ConvertAttendanceToEntity(row), nil
}

func (r *Repo) SaveAttendance(ctx context.Context, rec entity.AttendanceRecord) (entity.AttendanceRecord, error) {
	row, err := r.q.UpsertAttendance(ctx, gen.UpsertAttendanceParams{
		ID:       rec.ID,
		MemberID: rec.MemberID,
		Day:      rec.Date,
		CheckIn:  converter.ConvertTimePtrToTimestampz(rec.CheckIn),
		CheckOut: converter.ConvertTimePtrToTimestampz(rec.CheckOut),
	})
	if err != nil {
		return entity.AttendanceRecord{}, fmt.Errorf("save attendance: %v", err)
	}

	return converter.ConvertAttendanceToEntity(row), nil
}

// RecordAttendance stores the record and the member's presence in one transaction.
func (r *Repo) RecordAttendance(ctx context.Context, rec entity.AttendanceRecord, m entity.Member) (entity.AttendanceRecord, error) {
	var saved entity.AttendanceRecord
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		if saved, err = r.SaveAttendance(ctx, rec); err != nil {
			return err
		}
		_, err = r.SaveMember(ctx, m)
		return err
	})
	if err != nil {
		return entity.AttendanceRecord{}, fmt.Errorf("record attendance: %v", err)
	}

	return saved, nil
}
