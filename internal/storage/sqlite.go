// Package storage archives puzzles and their solve results in SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"svw.info/sudokulogic/internal/domain"
	"svw.info/sudokulogic/internal/gridio"
)

// ErrNotFound is returned when no archived puzzle has the given id.
var ErrNotFound = errors.New("puzzle not found")

// Store persists puzzles in a single SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS puzzles (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL DEFAULT '',
		givens     TEXT NOT NULL,
		final      TEXT NOT NULL,
		outcome    TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_puzzles_created ON puzzles(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Save writes p to the archive, assigning an id and timestamp when
// missing. The grid arrays are stored in the 81-character text format.
func (s *Store) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil {
		return errors.New("nil puzzle")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO puzzles (id, name, givens, final, outcome, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, gridio.Flatten(p.Givens), gridio.Flatten(p.Final), p.Outcome, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("save puzzle: %w", err)
	}
	return nil
}

// Load retrieves one archived puzzle by id.
func (s *Store) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, givens, final, outcome, created_at FROM puzzles WHERE id = ?`, id)
	var p domain.Puzzle
	var givens, final string
	if err := row.Scan(&p.ID, &p.Name, &givens, &final, &p.Outcome, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load puzzle: %w", err)
	}
	var err error
	if p.Givens, err = gridio.Unflatten(givens); err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}
	if p.Final, err = gridio.Unflatten(final); err != nil {
		return nil, fmt.Errorf("load puzzle %s: %w", id, err)
	}
	return &p, nil
}

// List returns metadata for all archived puzzles, newest first.
func (s *Store) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, outcome, created_at FROM puzzles ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	defer rows.Close()
	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		if err := rows.Scan(&m.ID, &m.Name, &m.Outcome, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
