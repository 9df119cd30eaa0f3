package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

//go:embed default.yaml
var defaultSeed []byte

type Data struct {
	Members     []Member     `yaml:"members"`
	Notes       []Note       `yaml:"notes"`
	Connections []Connection `yaml:"connections"`
}

type Member struct {
	ID         string        `yaml:"id"`
	Name       string        `yaml:"name"`
	Email      string        `yaml:"email"`
	Role       string        `yaml:"role"`
	Lab        string        `yaml:"lab"`
	University string        `yaml:"university"`
	AvatarURL  string        `yaml:"avatar_url"`
	Present    bool          `yaml:"present"`
	Location   string        `yaml:"location"`
	ChangedAgo time.Duration `yaml:"changed_ago"`
	ReturnIn   time.Duration `yaml:"return_in"`
}

type Note struct {
	ID        string          `yaml:"id"`
	Content   string          `yaml:"content"`
	Tags      []string        `yaml:"tags"`
	Color     string          `yaml:"color"`
	Position  entity.Position `yaml:"position"`
	Assignees []string        `yaml:"assignees"`
}

type Connection struct {
	ID   string `yaml:"id"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Load reads a seed file, or the built-in board when path is empty.
func Load(path string) (Data, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Data{}, fmt.Errorf("read seed file: %v", err)
		}
		raw = b
	}

	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("decode seed: %v", err)
	}

	return d, nil
}

type store interface {
	ListNotes(ctx context.Context) ([]entity.Note, error)
	CreateNote(ctx context.Context, note entity.Note) (entity.Note, error)
	CreateConnection(ctx context.Context, conn entity.Connection) (entity.Connection, bool, error)
	ListMembers(ctx context.Context) ([]entity.Member, error)
	SaveMember(ctx context.Context, m entity.Member) (entity.Member, error)
}

// Apply writes d into an empty store. It reports false and writes nothing when
// the store already holds notes or members.
func Apply(ctx context.Context, s store, d Data, now time.Time) (bool, error) {
	notes, err := s.ListNotes(ctx)
	if err != nil {
		return false, fmt.Errorf("seed list notes: %w", err)
	}
	members, err := s.ListMembers(ctx)
	if err != nil {
		return false, fmt.Errorf("seed list members: %w", err)
	}
	if len(notes) > 0 || len(members) > 0 {
		return false, nil
	}

	now = now.UTC()

	for _, m := range d.Members {
		member := entity.Member{
			ID:               m.ID,
			Name:             m.Name,
			Email:            m.Email,
			Role:             m.Role,
			Lab:              m.Lab,
			University:       m.University,
			AvatarURL:        m.AvatarURL,
			Present:          m.Present,
			Location:         m.Location,
			LastStatusChange: now.Add(-m.ChangedAgo),
		}
		if !m.Present && m.ReturnIn > 0 {
			at := now.Add(m.ReturnIn)
			member.ExpectedReturn = &at
		}
		if _, err := s.SaveMember(ctx, member); err != nil {
			return false, fmt.Errorf("seed member %s: %w", m.ID, err)
		}
	}

	for _, n := range d.Notes {
		note := entity.NoteDraft{
			Content:     n.Content,
			Tags:        n.Tags,
			Color:       entity.Color(n.Color),
			Position:    n.Position,
			UpdatedAt:   now,
			AssigneeIDs: n.Assignees,
		}.WithID(n.ID)
		note.Version = 1
		if _, err := s.CreateNote(ctx, note); err != nil {
			return false, fmt.Errorf("seed note %s: %w", n.ID, err)
		}
	}

	for _, c := range d.Connections {
		if c.From == c.To {
			continue
		}
		if _, _, err := s.CreateConnection(ctx, entity.Connection{ID: c.ID, FromID: c.From, ToID: c.To}); err != nil {
			return false, fmt.Errorf("seed connection %s: %w", c.ID, err)
		}
	}

	slogx.Info(ctx, "board seeded",
		slog.Int("members", len(d.Members)),
		slog.Int("notes", len(d.Notes)),
		slog.Int("connections", len(d.Connections)),
	)

	return true, nil
}
