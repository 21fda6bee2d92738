// Package storage provides SQLite-based persistence for finished sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session results.
type Store struct {
	db *sql.DB
}

// Result is one finished session.
type Result struct {
	ID        int64
	Level     string
	Status    string // "victory" or "defeat"
	Points    int
	Frames    int
	Seconds   float64 // simulated time
	CreatedAt time.Time
}

// LevelStats aggregates every session played on one level.
type LevelStats struct {
	Level     string
	Plays     int
	Victories int
	HighScore int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			status TEXT NOT NULL,
			points INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			seconds REAL NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_level ON results(level);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(level, status, points DESC, frames ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores a finished session and returns its ID.
// A zero CreatedAt is set to the current time.
func (s *Store) Record(ctx context.Context, r Result) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO results (level, status, points, frames, seconds, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Level, r.Status, r.Points, r.Frames, r.Seconds, r.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Best returns the top victories on a level: most points first, then the
// fewest frames.
func (s *Store) Best(ctx context.Context, level string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.query(ctx,
		`SELECT id, level, status, points, frames, seconds, created_at
		 FROM results
		 WHERE level = ? AND status = 'victory'
		 ORDER BY points DESC, frames ASC, id ASC
		 LIMIT ?`,
		level, limit,
	)
}

// Recent returns the latest sessions across all levels, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.query(ctx,
		`SELECT id, level, status, points, frames, seconds, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// Stats aggregates the sessions played on a level. A level with no
// sessions returns zero counts.
func (s *Store) Stats(ctx context.Context, level string) (LevelStats, error) {
	stats := LevelStats{Level: level}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN status = 'victory' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(points), 0)
		 FROM results WHERE level = ?`,
		level,
	).Scan(&stats.Plays, &stats.Victories, &stats.HighScore)
	if err != nil {
		return LevelStats{}, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	return stats, nil
}

// Clear deletes every result for a level.
func (s *Store) Clear(ctx context.Context, level string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM results WHERE level = ?", level); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Result
	for rows.Next() {
		var r Result
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Level, &r.Status, &r.Points, &r.Frames, &r.Seconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("storage: bad created_at %q: %w", createdAt, err)
		}
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}
