package sink

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/loredex/semchunk/pkg/types"
)

// ErrNotFound is returned when a requested document has no stored chunks.
var ErrNotFound = errors.New("not found")

const schema = `
CREATE TABLE IF NOT EXISTS chunks (
	doc_id       TEXT    NOT NULL,
	level        INTEGER NOT NULL DEFAULT 0,
	chunk_index  INTEGER NOT NULL,
	chunk_id     TEXT    NOT NULL,
	text         TEXT    NOT NULL,
	total_chunks INTEGER NOT NULL,
	hierarchical INTEGER NOT NULL DEFAULT 0,
	summary      INTEGER NOT NULL DEFAULT 0,
	metadata     TEXT,
	created_at   TIMESTAMP NOT NULL,
	PRIMARY KEY (doc_id, level, chunk_index)
);
CREATE INDEX IF NOT EXISTS idx_chunks_doc ON chunks(doc_id);
`

// Store persists chunk lists in SQLite, keyed by document. Chunks carry
// no identity beyond content and position, so a re-chunked document
// simply replaces its previous list.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a chunk store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL for concurrent readers, single writer
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveChunks replaces a document's stored chunk list with chunks. The
// replace is transactional: readers never observe a half-written list.
func (s *Store) SaveChunks(ctx context.Context, docID string, chunks []types.Chunk) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM chunks WHERE doc_id = ?", docID); err != nil {
		return fmt.Errorf("failed to delete old chunks: %w", err)
	}

	const insert = `
		INSERT INTO chunks (doc_id, level, chunk_index, chunk_id, text,
			total_chunks, hierarchical, summary, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	for _, chunk := range chunks {
		metaJSON, err := marshalMetadata(chunk.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata for %s: %w", chunk.ID, err)
		}
		if _, err := tx.ExecContext(ctx, insert,
			docID, chunk.Level, chunk.Index, chunk.ID, chunk.Text,
			chunk.TotalChunks, chunk.Hierarchical, chunk.Summary, metaJSON, now); err != nil {
			return fmt.Errorf("failed to insert chunk %s: %w", chunk.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// ListChunks returns a document's stored chunks ordered by level then
// index.
func (s *Store) ListChunks(ctx context.Context, docID string) ([]types.Chunk, error) {
	const query = `
		SELECT level, chunk_index, chunk_id, text, total_chunks,
			hierarchical, summary, metadata
		FROM chunks WHERE doc_id = ?
		ORDER BY level, chunk_index
	`
	rows, err := s.db.QueryContext(ctx, query, docID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var chunks []types.Chunk
	for rows.Next() {
		var chunk types.Chunk
		var metaJSON sql.NullString
		if err := rows.Scan(&chunk.Level, &chunk.Index, &chunk.ID, &chunk.Text,
			&chunk.TotalChunks, &chunk.Hierarchical, &chunk.Summary, &metaJSON); err != nil {
			return nil, fmt.Errorf("failed to scan chunk: %w", err)
		}
		if metaJSON.Valid && metaJSON.String != "" {
			if err := json.Unmarshal([]byte(metaJSON.String), &chunk.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
			}
		}
		chunks = append(chunks, chunk)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, ErrNotFound
	}
	return chunks, nil
}

// CountChunks reports the total number of stored chunks.
func (s *Store) CountChunks(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks").Scan(&count)
	return count, err
}

func marshalMetadata(meta map[string]any) (sql.NullString, error) {
	if len(meta) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
