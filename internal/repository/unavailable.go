package repository

import (
	"context"
)

// UnavailableStore is the degraded store used when no connection could be
// established. Every operation fails with an error matching
// ErrStorageUnavailable that unwraps to the startup ConnectError.
type UnavailableStore struct {
	reason *ConnectError
}

// NewUnavailableStore returns a degraded store remembering reason, which may be nil.
func NewUnavailableStore(reason *ConnectError) *UnavailableStore {
	return &UnavailableStore{reason: reason}
}

var _ DocumentStore = (*UnavailableStore)(nil)

// Reason returns the error that put the store in degraded mode.
func (s *UnavailableStore) Reason() *ConnectError { return s.reason }

func (s *UnavailableStore) err() error { return &unavailableError{reason: s.reason} }

func (s *UnavailableStore) CreateDocument(context.Context, string, any) (string, error) {
	return "", s.err()
}

func (s *UnavailableStore) GetDocuments(context.Context, string, Filter, int) ([]Document, error) {
	return nil, s.err()
}

func (s *UnavailableStore) ListCollections(context.Context) ([]string, error) {
	return nil, s.err()
}

func (s *UnavailableStore) Ping(context.Context) error { return s.err() }

func (s *UnavailableStore) Close() {}
