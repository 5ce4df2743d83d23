package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/kakari-nlp/kakari"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex // guards entropy
	entropy *ulid.MonotonicEntropy
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS analyses (
		id         TEXT PRIMARY KEY,
		text       TEXT NOT NULL DEFAULT '',
		morphemes  INTEGER NOT NULL,
		result     TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at DESC);
	`)
	return err
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Save(ctx context.Context, a *kakari.Analysis) (*Record, error) {
	if a == nil {
		return nil, errors.New("save: nil analysis")
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode analysis: %w", err)
	}

	now := time.Now().UTC()
	id := s.newID(now)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, text, morphemes, result, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, a.Text, len(a.Morphemes), string(b), now.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("insert analysis: %w", err)
	}

	return &Record{
		ID:        id,
		Text:      a.Text,
		Morphemes: len(a.Morphemes),
		Analysis:  a,
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, text, morphemes, result, created_at FROM analyses WHERE id = ?`, id)
	rec, err := scanRecord(row, true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get analysis %s: %w", id, err)
	}
	return rec, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]Record, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := `SELECT id, text, morphemes, result, created_at FROM analyses`
	var args []any
	if p.Contains != "" {
		query += ` WHERE instr(text, ?) > 0`
		args = append(args, p.Contains)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows, !p.Summary)
		if err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner, withAnalysis bool) (*Record, error) {
	var (
		rec       Record
		result    string
		createdAt string
	)
	if err := sc.Scan(&rec.ID, &rec.Text, &rec.Morphemes, &result, &createdAt); err != nil {
		return nil, err
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	if withAnalysis {
		var a kakari.Analysis
		if err := json.Unmarshal([]byte(result), &a); err != nil {
			return nil, fmt.Errorf("decode analysis %s: %w", rec.ID, err)
		}
		rec.Analysis = &a
	}
	return &rec, nil
}
