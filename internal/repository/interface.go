package repository

import (
	"context"
)

// Standard fields the store adds to every document.
const (
	FieldID        = "_id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// Document is one stored record. Identifiers and timestamps are always
// plain strings.
type Document map[string]any

// Filter selects documents by equality on top-level fields.
// An empty filter matches every document.
type Filter map[string]any

// DocumentStore persists schema-flexible documents grouped in collections.
// Implementations must be safe for concurrent use.
type DocumentStore interface {
	// CreateDocument inserts the payload's fields as a new document and
	// returns its store-assigned identifier.
	CreateDocument(ctx context.Context, collection string, payload any) (string, error)

	// GetDocuments returns up to limit documents matching filter, in store
	// order. limit <= 0 means no limit.
	GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)

	// ListCollections returns the names of the collections in the store.
	ListCollections(ctx context.Context) ([]string, error)

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error

	Close()
}
