// ABOUTME: SQLite persistence for the vector index
// ABOUTME: Uses modernc.org/sqlite for pure-Go SQLite support
package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/tutorstack/tutor/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS chunks (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	chunk_id TEXT    NOT NULL,
	source   TEXT    NOT NULL,
	ordinal  INTEGER NOT NULL,
	text     TEXT    NOT NULL,
	vector   TEXT    NOT NULL
);
`

// Store persists index entries under a data directory so the index can be
// reopened at startup without re-embedding the corpus.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore opens (creating if needed) the index database under dataDir.
func OpenStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	path := filepath.Join(dataDir, "index.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Replace atomically rewrites the persisted index with entries, preserving
// insertion order.
func (s *Store) Replace(ctx context.Context, entries []Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM chunks`); err != nil {
		return fmt.Errorf("failed to clear index table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO chunks (chunk_id, source, ordinal, text, vector) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		vec, err := json.Marshal(e.Vector)
		if err != nil {
			return fmt.Errorf("failed to encode vector for %s: %w", e.Chunk.ChunkID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			e.Chunk.ChunkID, e.Chunk.Source, e.Chunk.Ordinal, e.Chunk.Text, string(vec)); err != nil {
			return fmt.Errorf("failed to insert chunk %s: %w", e.Chunk.ChunkID, err)
		}
	}

	return tx.Commit()
}

// LoadIndex rebuilds an in-memory Index from the persisted entries, in their
// original insertion order. An empty table yields an empty index.
func (s *Store) LoadIndex(ctx context.Context) (*Index, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT chunk_id, source, ordinal, text, vector FROM chunks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query index table: %w", err)
	}
	defer rows.Close()

	ix := New()
	for rows.Next() {
		var chunk models.Chunk
		var vecJSON string
		if err := rows.Scan(&chunk.ChunkID, &chunk.Source, &chunk.Ordinal, &chunk.Text, &vecJSON); err != nil {
			return nil, fmt.Errorf("failed to scan chunk row: %w", err)
		}
		var vector []float64
		if err := json.Unmarshal([]byte(vecJSON), &vector); err != nil {
			return nil, fmt.Errorf("failed to decode vector for %s: %w", chunk.ChunkID, err)
		}
		ix.Add(vector, chunk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read index rows: %w", err)
	}
	return ix, nil
}
