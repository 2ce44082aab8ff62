package service

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// AnalyticsService records and lists analytics events.
type AnalyticsService interface {
	// Track stores an event and returns its id.
	Track(ctx context.Context, ev *model.AnalyticsEvent) (string, error)

	// List returns up to limit stored events in store order.
	// limit <= 0 returns every event.
	List(ctx context.Context, limit int) ([]repository.Document, error)
}

type analyticsService struct {
	store repository.DocumentStore
}

// NewAnalyticsService creates an AnalyticsService backed by the given store.
func NewAnalyticsService(store repository.DocumentStore) AnalyticsService {
	return &analyticsService{store: store}
}

func (s *analyticsService) Track(ctx context.Context, ev *model.AnalyticsEvent) (string, error) {
	if ev == nil {
		return "", errors.New("analytics event is nil")
	}
	return s.store.CreateDocument(ctx, model.CollectionAnalyticsEvent, ev)
}

func (s *analyticsService) List(ctx context.Context, limit int) ([]repository.Document, error) {
	return s.store.GetDocuments(ctx, model.CollectionAnalyticsEvent, nil, limit)
}
