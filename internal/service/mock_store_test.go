package service

import (
	"context"

	"github.com/portfolio/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockDocumentStore — stub DocumentStore with overridable funcs
// ---------------------------------------------------------------------------

type mockDocumentStore struct {
	createFunc          func(ctx context.Context, collection string, payload any) (string, error)
	getFunc             func(ctx context.Context, collection string, filter repository.Filter, limit int) ([]repository.Document, error)
	listCollectionsFunc func(ctx context.Context) ([]string, error)
}

func (m *mockDocumentStore) CreateDocument(ctx context.Context, collection string, payload any) (string, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, collection, payload)
	}
	return "id-1", nil
}

func (m *mockDocumentStore) GetDocuments(ctx context.Context, collection string, filter repository.Filter, limit int) ([]repository.Document, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, collection, filter, limit)
	}
	return []repository.Document{}, nil
}

func (m *mockDocumentStore) ListCollections(ctx context.Context) ([]string, error) {
	if m.listCollectionsFunc != nil {
		return m.listCollectionsFunc(ctx)
	}
	return []string{}, nil
}

func (m *mockDocumentStore) Ping(context.Context) error { return nil }

func (m *mockDocumentStore) Close() {}
