// Package journal records engine event streams in SQLite so placement
// sessions can be inspected and replayed later.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phanxgames/easel"

	_ "modernc.org/sqlite"
)

// ErrSessionNotFound is returned for an unknown session id.
var ErrSessionNotFound = errors.New("journal: session not found")

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS events (
	session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	seq        INTEGER NOT NULL,
	type       TEXT NOT NULL,
	at         INTEGER NOT NULL,
	payload    TEXT NOT NULL,
	PRIMARY KEY (session_id, seq)
);
`

// Session describes one recorded event stream.
type Session struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	Events    int
}

// Store persists event streams in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (creating if needed) a journal database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// StartSession creates an empty session and returns its id.
func (s *Store) StartSession(ctx context.Context, name string) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO sessions (id, name, created_at) VALUES (?, ?, ?)`,
		id.String(), strings.TrimSpace(name), toMillis(time.Now()),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("start session: %w", err)
	}
	return id, nil
}

// Record appends events to a session in order.
func (s *Store) Record(ctx context.Context, session uuid.UUID, events ...easel.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record events: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var next int64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), -1) + 1 FROM events WHERE session_id = ?`,
		session.String(),
	).Scan(&next)
	if err != nil {
		return fmt.Errorf("record events: next seq: %w", err)
	}

	for i, ev := range events {
		payload, err := easel.MarshalEvent(ev)
		if err != nil {
			return fmt.Errorf("record events: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO events (session_id, seq, type, at, payload) VALUES (?, ?, ?, ?, ?)`,
			session.String(), next+int64(i), ev.Type.String(), toMillis(ev.At), string(payload),
		)
		if err != nil {
			return fmt.Errorf("record events: insert: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record events: commit: %w", err)
	}
	return nil
}

// Load returns a session's events in recorded order.
func (s *Store) Load(ctx context.Context, session uuid.UUID) ([]easel.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var exists int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sessions WHERE id = ?`, session.String(),
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if exists == 0 {
		return nil, ErrSessionNotFound
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT seq, payload FROM events WHERE session_id = ? ORDER BY seq`,
		session.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	defer rows.Close()

	var events []easel.Event
	for rows.Next() {
		var (
			seq     int64
			payload string
		)
		if err := rows.Scan(&seq, &payload); err != nil {
			return nil, fmt.Errorf("load session: scan: %w", err)
		}
		ev, err := easel.UnmarshalEvent([]byte(payload))
		if err != nil {
			return nil, fmt.Errorf("load session: event %d: %w", seq, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return events, nil
}

// Sessions lists every session, newest first.
func (s *Store) Sessions(ctx context.Context) ([]Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT s.id, s.name, s.created_at, COUNT(e.seq)
		FROM sessions s LEFT JOIN events e ON e.session_id = s.id
		GROUP BY s.id
		ORDER BY s.created_at DESC, s.id`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var (
			id        string
			sess      Session
			createdAt int64
		)
		if err := rows.Scan(&id, &sess.Name, &createdAt, &sess.Events); err != nil {
			return nil, fmt.Errorf("list sessions: scan: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("list sessions: %w", err)
		}
		sess.ID = parsed
		sess.CreatedAt = fromMillis(createdAt)
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return out, nil
}

// DeleteSession removes a session and its events.
func (s *Store) DeleteSession(ctx context.Context, session uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, session.String())
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Recorder applies events to an engine and journals them.
type Recorder struct {
	store   *Store
	session uuid.UUID
	engine  *easel.Engine
}

// NewRecorder starts a session named name that records everything
// applied through it to engine.
func NewRecorder(ctx context.Context, store *Store, name string, engine *easel.Engine) (*Recorder, error) {
	id, err := store.StartSession(ctx, name)
	if err != nil {
		return nil, err
	}
	return &Recorder{store: store, session: id, engine: engine}, nil
}

// Session returns the id of the session being recorded.
func (r *Recorder) Session() uuid.UUID {
	return r.session
}

// Apply records ev and applies it to the engine. The event is applied even
// when recording fails.
func (r *Recorder) Apply(ctx context.Context, ev easel.Event) error {
	err := r.store.Record(ctx, r.session, ev)
	r.engine.Apply(ev)
	return err
}
