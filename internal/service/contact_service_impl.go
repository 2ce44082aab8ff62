package service

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	store repository.DocumentStore
}

// NewContactService creates a ContactService backed by the given store.
func NewContactService(store repository.DocumentStore) ContactService {
	return &contactServiceImpl{store: store}
}

func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactSubmission) (string, error) {
	if msg == nil {
		return "", errors.New("contact submission is nil")
	}
	return s.store.CreateDocument(ctx, model.CollectionContactSubmission, msg)
}
