package members

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

type membersRepository interface {
	ListMembers(ctx context.Context) ([]entity.Member, error)
	GetMember(ctx context.Context, id string) (entity.Member, error)
	SaveMember(ctx context.Context, m entity.Member) (entity.Member, error)

	// ListAttendance returns records of one member, or of everyone when memberID is empty.
	ListAttendance(ctx context.Context, memberID string) ([]entity.AttendanceRecord, error)
	GetAttendance(ctx context.Context, memberID, date string) (entity.AttendanceRecord, error)
	// RecordAttendance saves the record and the member atomically.
	RecordAttendance(ctx context.Context, rec entity.AttendanceRecord, m entity.Member) (entity.AttendanceRecord, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo membersRepository `option:"mandatory" validate:"required"`

	now func() time.Time
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate members usecase options: %v", err)
	}

	if opts.now == nil {
		opts.now = time.Now
	}

	return &Usecase{Options: opts}, nil
}

type Presence struct {
	Present bool
	// Location is kept unchanged when empty.
	Location       string
	ExpectedReturn *time.Time
}

type NewMember struct {
	Name       string
	Email      string
	Role       string
	Lab        string
	University string
	AvatarURL  string
}

func (u *Usecase) ListMembers(ctx context.Context) ([]entity.Member, error) {
	members, err := u.repo.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase list members: %w", err)
	}

	return members, nil
}

func (u *Usecase) GetMember(ctx context.Context, id string) (entity.Member, error) {
	m, err := u.repo.GetMember(ctx, id)
	if err != nil {
		return entity.Member{}, fmt.Errorf("usecase get member: %w", err)
	}

	return m, nil
}

func (u *Usecase) AddMember(ctx context.Context, in NewMember) (entity.Member, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.Member{}, fmt.Errorf("usecase add member: %w: empty name", entity.ErrInvalidMember)
	}

	id, err := gonanoid.New()
	if err != nil {
		return entity.Member{}, fmt.Errorf("usecase generate member id: %w", err)
	}

	m, err := u.repo.SaveMember(ctx, entity.Member{
		ID:               id,
		Name:             name,
		Email:            strings.TrimSpace(in.Email),
		Role:             in.Role,
		Lab:              in.Lab,
		University:       in.University,
		AvatarURL:        in.AvatarURL,
		LastStatusChange: u.now().UTC(),
	})
	if err != nil {
		return entity.Member{}, fmt.Errorf("usecase add member: %w", err)
	}

	slogx.Info(ctx, "success to add member", slogx.MemberID(m.ID))
	return m, nil
}

func (u *Usecase) UpdatePresence(ctx context.Context, id string, p Presence) (entity.Member, error) {
	m, err := u.repo.GetMember(ctx, id)
	if err != nil {
		return entity.Member{}, fmt.Errorf("usecase update presence: %w", err)
	}

	m = u.applyPresence(m, p)

	m, err = u.repo.SaveMember(ctx, m)
	if err != nil {
		return entity.Member{}, fmt.Errorf("usecase update presence: %w", err)
	}

	slogx.Debug(ctx, "presence updated", slogx.MemberID(m.ID), slog.Bool("present", m.Present))
	return m, nil
}

// CheckIn records today's arrival and marks the member present. A second
// check-in on the same day keeps the original arrival time and clears any
// check-out.
func (u *Usecase) CheckIn(ctx context.Context, memberID string) (entity.AttendanceRecord, error) {
	m, err := u.repo.GetMember(ctx, memberID)
	if err != nil {
		return entity.AttendanceRecord{}, fmt.Errorf("usecase check in: %w", err)
	}

	now := u.now()
	today := now.Format(entity.DateLayout)

	rec, err := u.repo.GetAttendance(ctx, memberID, today)
	switch {
	case errors.Is(err, entity.ErrAttendanceNotFound):
		id, err := gonanoid.New()
		if err != nil {
			return entity.AttendanceRecord{}, fmt.Errorf("usecase generate attendance id: %w", err)
		}
		rec = entity.AttendanceRecord{ID: id, MemberID: memberID, Date: today}
	case err != nil:
		return entity.AttendanceRecord{}, fmt.Errorf("usecase check in: %w", err)
	}

	if rec.CheckIn == nil {
		at := now.UTC()
		rec.CheckIn = &at
	}
	rec.CheckOut = nil

	rec, err = u.repo.RecordAttendance(ctx, rec, u.applyPresence(m, Presence{Present: true}))
	if err != nil {
		return entity.AttendanceRecord{}, fmt.Errorf("usecase check in: %w", err)
	}

	slogx.Info(ctx, "member checked in", slogx.MemberID(memberID))
	return rec, nil
}

func (u *Usecase) CheckOut(ctx context.Context, memberID string) (entity.AttendanceRecord, error) {
	m, err := u.repo.GetMember(ctx, memberID)
	if err != nil {
		return entity.AttendanceRecord{}, fmt.Errorf("usecase check out: %w", err)
	}

	now := u.now()

	rec, err := u.repo.GetAttendance(ctx, memberID, now.Format(entity.DateLayout))
	if err != nil {
		return entity.AttendanceRecord{}, fmt.Errorf("usecase check out: %w", err)
	}

	at := now.UTC()
	rec.CheckOut = &at

	rec, err = u.repo.RecordAttendance(ctx, rec, u.applyPresence(m, Presence{Present: false}))
	if err != nil {
		return entity.AttendanceRecord{}, fmt.Errorf("usecase check out: %w", err)
	}

	slogx.Info(ctx, "member checked out", slogx.MemberID(memberID))
	return rec, nil
}

func (u *Usecase) ListAttendance(ctx context.Context, memberID string) ([]entity.AttendanceRecord, error) {
	recs, err := u.repo.ListAttendance(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("usecase list attendance: %w", err)
	}

	return recs, nil
}

func (u *Usecase) applyPresence(m entity.Member, p Presence) entity.Member {
	m.LastStatusChange = u.now().UTC()
	m.Present = p.Present
	if loc := strings.TrimSpace(p.Location); loc != "" {
		m.Location = loc
	}
	if p.Present {
		m.ExpectedReturn = nil
	} else if p.ExpectedReturn != nil {
		at := p.ExpectedReturn.UTC()
		m.ExpectedReturn = &at
	}
	return m
}
