package entity

import (
	"errors"
	"sort"
	"time"
)

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrAttendanceNotFound = errors.New("no check-in recorded for today")
	ErrInvalidMember      = errors.New("invalid member")
)

type Member struct {
	ID               string
	Name             string
	Email            string
	Role             string
	Lab              string
	University       string
	AvatarURL        string
	Present          bool
	Location         string
	LastStatusChange time.Time
	ExpectedReturn   *time.Time
}

type AttendanceRecord struct {
	ID       string
	MemberID string
	// Date is YYYY-MM-DD in the server's local time zone.
	Date     string
	CheckIn  *time.Time
	CheckOut *time.Time
}

const DateLayout = "2006-01-02"

// ResolveAssignees joins assignee ids against members, dropping ids that no
// longer resolve.
func ResolveAssignees(ids []string, members []Member) []Member {
	if len(ids) == 0 {
		return nil
	}
	byID := make(map[string]Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	out := make([]Member, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

// SortAttendance orders records newest day first, then by member.
func SortAttendance(recs []AttendanceRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Date != recs[j].Date {
			return recs[i].Date > recs[j].Date
		}
		return recs[i].MemberID < recs[j].MemberID
	})
}
