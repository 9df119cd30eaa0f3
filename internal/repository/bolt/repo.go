package bolt

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	bolt "go.etcd.io/bbolt"

	"github.com/evgeniy-krivenko/labboard/internal/entity"
	"github.com/evgeniy-krivenko/labboard/pkg/logger/slogx"
)

var (
	bucketNotes       = []byte("notes")
	bucketConnections = []byte("connections")
	bucketMembers     = []byte("members")
	bucketAttendance  = []byte("attendance")
)

var errBucketMissing = errors.New("bucket missing")

// Repo stores every collection as JSON values in its own bucket. Records
// carry a sequence number so lists keep insertion order.
type Repo struct {
	db *bolt.DB
}

// Open creates the file if needed. A file locked by another process is
// retried up to attempts times.
func Open(ctx context.Context, path string, attempts uint) (*Repo, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("bolt path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create bolt dir: %v", err)
	}
	if attempts == 0 {
		attempts = 1
	}

	var db *bolt.DB
	if err := retry.Do(
		func() error {
			var err error
			db, err = bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
			return err
		},
		retry.Context(ctx),
		retry.Delay(300*time.Millisecond),
		retry.Attempts(attempts),
		retry.OnRetry(func(attempt uint, err error) {
			slogx.Warn(ctx, "failed to open bolt file", slogx.Err(err), slog.Uint64("attempt", uint64(attempt)))
		}),
	); err != nil {
		return nil, fmt.Errorf("open bolt file: %v", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketNotes, bucketConnections, bucketMembers, bucketAttendance} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init bolt buckets: %v", err)
	}

	return &Repo{db: db}, nil
}

func (r *Repo) Close() error {
	return r.db.Close()
}

type noteRecord struct {
	Seq         uint64          `json:"seq"`
	ID          string          `json:"id"`
	Content     string          `json:"content"`
	Tags        []string        `json:"tags"`
	Color       string          `json:"color"`
	Position    entity.Position `json:"position"`
	UpdatedAt   time.Time       `json:"updated_at"`
	AssigneeIDs []string        `json:"assignee_ids,omitempty"`
	Version     int64           `json:"version"`
}

func (rec noteRecord) toEntity() entity.Note {
	return entity.Note{
		ID:          rec.ID,
		Content:     rec.Content,
		Tags:        rec.Tags,
		Color:       entity.Color(rec.Color),
		Position:    rec.Position,
		UpdatedAt:   rec.UpdatedAt,
		AssigneeIDs: rec.AssigneeIDs,
		Version:     rec.Version,
	}.Clone()
}

func newNoteRecord(seq uint64, n entity.Note) noteRecord {
	return noteRecord{
		Seq:         seq,
		ID:          n.ID,
		Content:     n.Content,
		Tags:        n.Tags,
		Color:       string(n.Color),
		Position:    n.Position,
		UpdatedAt:   n.UpdatedAt.UTC(),
		AssigneeIDs: n.AssigneeIDs,
		Version:     n.Version,
	}
}

type connectionRecord struct {
	Seq    uint64 `json:"seq"`
	ID     string `json:"id"`
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
}

func (rec connectionRecord) toEntity() entity.Connection {
	return entity.Connection{ID: rec.ID, FromID: rec.FromID, ToID: rec.ToID}
}

func (r *Repo) ListNotes(_ context.Context) ([]entity.Note, error) {
	var recs []noteRecord
	if err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		recs, err = scan[noteRecord](tx.Bucket(bucketNotes))
		return err
	}); err != nil {
		return nil, fmt.Errorf("list notes: %v", err)
	}

	sortBySeq(recs, func(n noteRecord) uint64 { return n.Seq })

	out := make([]entity.Note, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

func (r *Repo) GetNote(_ context.Context, id string) (entity.Note, error) {
	var rec noteRecord
	if err := r.db.View(func(tx *bolt.Tx) error {
		return get(tx.Bucket(bucketNotes), id, &rec, entity.ErrNoteNotFound)
	}); err != nil {
		if errors.Is(err, entity.ErrNoteNotFound) {
			return entity.Note{}, err
		}
		return entity.Note{}, fmt.Errorf("get note: %v", err)
	}

	return rec.toEntity(), nil
}

func (r *Repo) CreateNote(_ context.Context, note entity.Note) (entity.Note, error) {
	if note.Version == 0 {
		note.Version = 1
	}

	if err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketNotes)
		if b == nil {
			return errBucketMissing
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return put(b, note.ID, newNoteRecord(seq, note))
	}); err != nil {
		return entity.Note{}, fmt.Errorf("create note: %v", err)
	}

	return note.Clone(), nil
}

func (r *Repo) UpdateNote(_ context.Context, note entity.Note) (entity.Note, error) {
	if err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketNotes)
		var current noteRecord
		if err := get(b, note.ID, &current, entity.ErrNoteNotFound); err != nil {
			return err
		}
		note.Version = current.Version + 1
		return put(b, note.ID, newNoteRecord(current.Seq, note))
	}); err != nil {
		if errors.Is(err, entity.ErrNoteNotFound) {
			return entity.Note{}, err
		}
		return entity.Note{}, fmt.Errorf("update note: %v", err)
	}

	return note.Clone(), nil
}

// DeleteNote removes the note and its connections in a single transaction.
func (r *Repo) DeleteNote(_ context.Context, id string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		notes := tx.Bucket(bucketNotes)
		conns := tx.Bucket(bucketConnections)
		if notes == nil || conns == nil {
			return errBucketMissing
		}
		key := []byte(id)
		if notes.Get(key) == nil {
			return entity.ErrNoteNotFound
		}
		if err := notes.Delete(key); err != nil {
			return err
		}

		var stale [][]byte
		if err := conns.ForEach(func(k, v []byte) error {
			var rec connectionRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			if rec.FromID == id || rec.ToID == id {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		}); err != nil {
			return err
		}
		for _, k := range stale {
			if err := conns.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, entity.ErrNoteNotFound) {
			return err
		}
		return fmt.Errorf("delete note: %v", err)
	}

	return nil
}

func (r *Repo) ListConnections(_ context.Context) ([]entity.Connection, error) {
	var recs []connectionRecord
	if err := r.db.View(func(tx *bolt.Tx) error {
		var err error
		recs, err = scan[connectionRecord](tx.Bucket(bucketConnections))
		return err
	}); err != nil {
		return nil, fmt.Errorf("list connections: %v", err)
	}

	sortBySeq(recs, func(c connectionRecord) uint64 { return c.Seq })

	out := make([]entity.Connection, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

func (r *Repo) CreateConnection(_ context.Context, conn entity.Connection) (entity.Connection, bool, error) {
	created := true
	if err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketConnections)
		recs, err := scan[connectionRecord](b)
		if err != nil {
			return err
		}
		for _, rec := range recs {
			if existing := rec.toEntity(); existing.Joins(conn.FromID, conn.ToID) {
				conn, created = existing, false
				return nil
			}
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return put(b, conn.ID, connectionRecord{Seq: seq, ID: conn.ID, FromID: conn.FromID, ToID: conn.ToID})
	}); err != nil {
		return entity.Connection{}, false, fmt.Errorf("create connection: %v", err)
	}

	return conn, created, nil
}

func (r *Repo) DeleteConnection(_ context.Context, id string) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketConnections)
		if b == nil {
			return errBucketMissing
		}
		if b.Get([]byte(id)) == nil {
			return entity.ErrConnectionNotFound
		}
		return b.Delete([]byte(id))
	})
	if err != nil {
		if errors.Is(err, entity.ErrConnectionNotFound) {
			return err
		}
		return fmt.Errorf("delete connection: %v", err)
	}

	return nil
}

func scan[T any](b *bolt.Bucket) ([]T, error) {
	if b == nil {
		return nil, errBucketMissing
	}
	var out []T
	err := b.ForEach(func(_, v []byte) error {
		var rec T
		if err := json.Unmarshal(v, &rec); err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	return out, err
}

func get(b *bolt.Bucket, key string, dst any, notFound error) error {
	if b == nil {
		return errBucketMissing
	}
	raw := b.Get([]byte(key))
	if len(raw) == 0 {
		return notFound
	}
	return json.Unmarshal(raw, dst)
}

func put(b *bolt.Bucket, key string, rec any) error {
	if b == nil {
		return errBucketMissing
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return b.Put([]byte(key), raw)
}

func sortBySeq[T any](recs []T, seq func(T) uint64) {
	slices.SortFunc(recs, func(a, b T) int { return cmp.Compare(seq(a), seq(b)) })
}
