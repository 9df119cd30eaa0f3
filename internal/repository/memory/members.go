package memory

import (
	"context"
	"slices"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
)

func (r *Repo) ListMembers(_ context.Context) ([]entity.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.members), nil
}

func (r *Repo) GetMember(_ context.Context, id string) (entity.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := slices.IndexFunc(r.members, func(m entity.Member) bool { return m.ID == id })
	if i < 0 {
		return entity.Member{}, entity.ErrMemberNotFound
	}
	return r.members[i], nil
}

func (r *Repo) SaveMember(_ context.Context, m entity.Member) (entity.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.putMember(m)
	return m, nil
}

func (r *Repo) putMember(m entity.Member) {
	if i := slices.IndexFunc(r.members, func(x entity.Member) bool { return x.ID == m.ID }); i >= 0 {
		r.members[i] = m
	} else {
		r.members = append(r.members, m)
	}
}

func (r *Repo) ListAttendance(_ context.Context, memberID string) ([]entity.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.AttendanceRecord, 0, len(r.attendance))
	for _, rec := range r.attendance {
		if memberID == "" || rec.MemberID == memberID {
			out = append(out, rec)
		}
	}
	entity.SortAttendance(out)
	return out, nil
}

func (r *Repo) GetAttendance(_ context.Context, memberID, date string) (entity.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.attendance {
		if rec.MemberID == memberID && rec.Date == date {
			return rec, nil
		}
	}
	return entity.AttendanceRecord{}, entity.ErrAttendanceNotFound
}

func (r *Repo) SaveAttendance(_ context.Context, rec entity.AttendanceRecord) (entity.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.putAttendance(rec)
	return rec, nil
}

// RecordAttendance stores the record and the member's presence under one lock.
func (r *Repo) RecordAttendance(_ context.Context, rec entity.AttendanceRecord, m entity.Member) (entity.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.putAttendance(rec)
	r.putMember(m)
	return rec, nil
}

func (r *Repo) putAttendance(rec entity.AttendanceRecord) {
	if i := slices.IndexFunc(r.attendance, func(x entity.AttendanceRecord) bool { return x.ID == rec.ID }); i >= 0 {
		r.attendance[i] = rec
	} else {
		r.attendance = append(r.attendance, rec)
	}
}
