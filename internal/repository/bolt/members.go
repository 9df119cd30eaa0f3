package bolt

import (
	"context"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
)

type memberRecord struct {
	Seq              uint64     `json:"seq"`
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	Lab              string     `json:"lab"`
	University       string     `json:"university"`
	AvatarURL        string     `json:"avatar_url"`
	Present          bool       `json:"present"`
	Location         string     `json:"location"`
	LastStatusChange time.Time  `json:"last_status_change"`
	ExpectedReturn   *time.Time `json:"expected_return,omitempty"`
}

func (rec memberRecord) toEntity() entity.Member {
	return entity.Member{
		ID:               rec.ID,
		Name:             rec.Name,
		Email:            rec.Email,
		Role:             rec.Role,
		Lab:              rec.Lab,
		University:       rec.University,
		AvatarURL:        rec.AvatarURL,
		Present:          rec.Present,
		Location:         rec.Location,
		LastStatusChange: rec.LastStatusChange,
		ExpectedReturn:   rec.ExpectedReturn,
	}
}

type attendanceRecord struct {
	ID       string     `json:"id"`
	MemberID string     `json:"member_id"`
	Date     string     `json:"date"`
	CheckIn  *time.Time `json:"check_in,omitempty"`
	CheckOut *time.Time `json:"check_out,omitempty"`
}

func (rec attendanceRecord) toEntity() entity.AttendanceRecord {
	return entity.AttendanceRecord(rec)
}

func (r *Repo) ListMembers(_ context.Context) ([]entity.Member, error) {
	var recs []memberRecord
	if err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		recs, err = scan[memberRecord](tx.Bucket(bucketMembers))
		return err
	}); err != nil {
		return nil, fmt.Errorf("list members: %v", err)
	}

	sortBySeq(recs, func(m memberRecord) uint64 { return m.Seq })

	out := make([]entity.Member, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

func (r *Repo) GetMember(_ context.Context, id string) (entity.Member, error) {
	var rec memberRecord
	if err := r.db.View(func(tx *bolt.Tx) error {
		return get(tx.Bucket(bucketMembers), id, &rec, entity.ErrMemberNotFound)
	}); err != nil {
		if errors.Is(err, entity.ErrMemberNotFound) {
			return entity.Member{}, err
		}
		return entity.Member{}, fmt.Errorf("get member: %v", err)
	}

	return rec.toEntity(), nil
}

func (r *Repo) SaveMember(_ context.Context, m entity.Member) (entity.Member, error) {
	if err := r.db.Update(func(tx *bolt.Tx) error {
		return putMember(tx, m)
	}); err != nil {
		return entity.Member{}, fmt.Errorf("save member: %v", err)
	}

	return m, nil
}

// putMember keeps the member's insertion sequence across updates.
func putMember(tx *bolt.Tx, m entity.Member) error {
	b := tx.Bucket(bucketMembers)
	var current memberRecord
	err := get(b, m.ID, &current, entity.ErrMemberNotFound)
	switch {
	case errors.Is(err, entity.ErrMemberNotFound):
		if current.Seq, err = b.NextSequence(); err != nil {
			return err
		}
	case err != nil:
		return err
	}
	return put(b, m.ID, memberRecord{
		Seq:              current.Seq,
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		Role:             m.Role,
		Lab:              m.Lab,
		University:       m.University,
		AvatarURL:        m.AvatarURL,
		Present:          m.Present,
		Location:         m.Location,
		LastStatusChange: m.LastStatusChange,
		ExpectedReturn:   m.ExpectedReturn,
	})
}

func (r *Repo) ListAttendance(_ context.Context, memberID string) ([]entity.AttendanceRecord, error) {
	var recs []attendanceRecord
	if err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		recs, err = scan[attendanceRecord](tx.Bucket(bucketAttendance))
		return err
	}); err != nil {
		return nil, fmt.Errorf("list attendance: %v", err)
	}

	out := make([]entity.AttendanceRecord, 0, len(recs))
	for _, rec := range recs {
		if memberID == "" || rec.MemberID == memberID {
			out = append(out, rec.toEntity())
		}
	}
	entity.SortAttendance(out)
	return out, nil
}

func (r *Repo) GetAttendance(ctx context.Context, memberID, date string) (entity.AttendanceRecord, error) {
	recs, err := r.ListAttendance(ctx, memberID)
	if err != nil {
		return entity.AttendanceRecord{}, err
	}
	for _, rec := range recs {
		if rec.Date == date {
			return rec, nil
		}
	}
	return entity.AttendanceRecord{}, entity.ErrAttendanceNotFound
}

func (r *Repo) SaveAttendance(_ context.Context, rec entity.AttendanceRecord) (entity.AttendanceRecord, error) {
	if err := r.db.Update(func(tx *bolt.Tx) error {
		return put(tx.Bucket(bucketAttendance), rec.ID, attendanceRecord(rec))
	}); err != nil {
		return entity.AttendanceRecord{}, fmt.Errorf("save attendance: %v", err)
	}

	return rec, nil
}

// RecordAttendance stores the record and the member's presence in one transaction.
func (r *Repo) RecordAttendance(_ context.Context, rec entity.AttendanceRecord, m entity.Member) (entity.AttendanceRecord, error) {
	if err := r.db.Update(func(tx *bolt.Tx) error {
		if err := put(tx.Bucket(bucketAttendance), rec.ID, attendanceRecord(rec)); err != nil {
			return err
		}
		return putMember(tx, m)
	}); err != nil {
		return entity.AttendanceRecord{}, fmt.Errorf("record attendance: %v", err)
	}

	return rec, nil
}
