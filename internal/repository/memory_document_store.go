package repository

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryDocumentStore keeps documents in process memory. It backs the
// memory:// URL scheme and serves as a test double.
type MemoryDocumentStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
	now         func() time.Time
}

// NewMemoryDocumentStore returns an empty in-memory store.
func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{
		collections: make(map[string][]Document),
		now:         time.Now,
	}
}

var _ DocumentStore = (*MemoryDocumentStore)(nil)

func (s *MemoryDocumentStore) CreateDocument(_ context.Context, collection string, payload any) (string, error) {
	fields, err := encodeDocument(payload)
	if err != nil {
		return "", &WriteError{Collection: collection, Err: err}
	}
	// Round-trip through JSON so stored values look like they would after
	// a real store: numbers as float64, nested maps as map[string]any.
	doc, err := cloneDocument(fields)
	if err != nil {
		return "", &WriteError{Collection: collection, Err: err}
	}

	id := uuid.NewString()
	ts := formatTime(s.now())
	doc[FieldID] = id
	doc[FieldCreatedAt] = ts
	doc[FieldUpdatedAt] = ts

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], doc)
	s.mu.Unlock()
	return id, nil
}

func (s *MemoryDocumentStore) GetDocuments(_ context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	want, err := cloneDocument(filter)
	if err != nil {
		return nil, &QueryError{Collection: collection, Err: err}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []Document{}
	for _, doc := range s.collections[collection] {
		if limit > 0 && len(docs) >= limit {
			break
		}
		if !matches(doc, want) {
			continue
		}
		cp, err := cloneDocument(doc)
		if err != nil {
			return nil, &QueryError{Collection: collection, Err: err}
		}
		docs = append(docs, cp)
	}
	return docs, nil
}

func (s *MemoryDocumentStore) ListCollections(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.collections), nil
}

func (s *MemoryDocumentStore) Ping(context.Context) error { return nil }

func (s *MemoryDocumentStore) Close() {}

func matches(doc, filter Document) bool {
	for k, v := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, v) {
			return false
		}
	}
	return true
}

func cloneDocument[M ~map[string]any](m M) (Document, error) {
	if len(m) == 0 {
		return Document{}, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	out := Document{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
