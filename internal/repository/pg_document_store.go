package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgQuerier is the subset of *pgxpool.Pool used by PgDocumentStore.
type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

const createDocumentsTable = `CREATE TABLE IF NOT EXISTS documents (
	id         UUID PRIMARY KEY,
	collection TEXT NOT NULL,
	body       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS documents_collection_created_at_idx
	ON documents (collection, created_at)`

// PgDocumentStore keeps every collection in one JSONB table.
type PgDocumentStore struct {
	pool pgQuerier
	now  func() time.Time
}

// NewPgDocumentStore creates a PgDocumentStore backed by the given pool.
func NewPgDocumentStore(pool pgQuerier) *PgDocumentStore {
	return &PgDocumentStore{pool: pool, now: time.Now}
}

var _ DocumentStore = (*PgDocumentStore)(nil)

// Init creates the documents table if it does not exist yet.
func (s *PgDocumentStore) Init(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createDocumentsTable); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

// CreateDocument inserts the payload as a JSONB body and returns the new UUID.
func (s *PgDocumentStore) CreateDocument(ctx context.Context, collection string, payload any) (string, error) {
	fields, err := encodeDocument(payload)
	if err != nil {
		return "", &WriteError{Collection: collection, Err: err}
	}
	// Standard fields live in their own columns.
	delete(fields, FieldID)
	delete(fields, FieldCreatedAt)
	delete(fields, FieldUpdatedAt)

	body, err := json.Marshal(fields)
	if err != nil {
		return "", &WriteError{Collection: collection, Err: err}
	}

	id := uuid.NewString()
	now := s.now().UTC()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (id, collection, body, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)`,
		id, collection, body, now,
	)
	if err != nil {
		return "", &WriteError{Collection: collection, Err: err}
	}
	return id, nil
}

// GetDocuments returns documents in insertion order. The filter is applied
// with JSONB containment, so it matches top-level field equality.
func (s *PgDocumentStore) GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	if filter == nil {
		filter = Filter{}
	}
	match, err := json.Marshal(filter)
	if err != nil {
		return nil, &QueryError{Collection: collection, Err: err}
	}

	// LIMIT NULL means no limit.
	var lim *int
	if limit > 0 {
		lim = &limit
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id::text, body, created_at, updated_at
		 FROM documents
		 WHERE collection = $1 AND body @> $2::jsonb
		 ORDER BY created_at, id
		 LIMIT $3`,
		collection, match, lim,
	)
	if err != nil {
		return nil, &QueryError{Collection: collection, Err: err}
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		var (
			id        string
			body      []byte
			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(&id, &body, &createdAt, &updatedAt); err != nil {
			return nil, &QueryError{Collection: collection, Err: err}
		}
		doc := Document{}
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, &QueryError{Collection: collection, Err: fmt.Errorf("decode document %s: %w", id, err)}
		}
		doc[FieldID] = id
		doc[FieldCreatedAt] = formatTime(createdAt)
		doc[FieldUpdatedAt] = formatTime(updatedAt)
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Collection: collection, Err: err}
	}
	return docs, nil
}

// ListCollections returns the distinct collection names, sorted.
func (s *PgDocumentStore) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &QueryError{Err: err}
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Err: err}
	}
	return names, nil
}

func (s *PgDocumentStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PgDocumentStore) Close() {
	s.pool.Close()
}
