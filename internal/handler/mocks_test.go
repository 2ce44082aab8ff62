package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock services
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, msg *model.ContactSubmission) (string, error)
}

func (m *mockContactService) Submit(ctx context.Context, msg *model.ContactSubmission) (string, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, msg)
	}
	return "id-1", nil
}

type mockAnalyticsService struct {
	trackFunc func(ctx context.Context, ev *model.AnalyticsEvent) (string, error)
	listFunc  func(ctx context.Context, limit int) ([]repository.Document, error)
}

func (m *mockAnalyticsService) Track(ctx context.Context, ev *model.AnalyticsEvent) (string, error) {
	if m.trackFunc != nil {
		return m.trackFunc(ctx, ev)
	}
	return "evt-1", nil
}

func (m *mockAnalyticsService) List(ctx context.Context, limit int) ([]repository.Document, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return nil, nil
}

type mockDiagnosticsService struct {
	reportFunc func(ctx context.Context) model.Diagnostics
}

func (m *mockDiagnosticsService) Report(ctx context.Context) model.Diagnostics {
	if m.reportFunc != nil {
		return m.reportFunc(ctx)
	}
	return model.Diagnostics{}
}

type stubArticles struct {
	gotCategory string
	articles    []model.Article
}

func (s *stubArticles) List(category string) []model.Article {
	s.gotCategory = category
	return s.articles
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// detailList decodes a 422 body into its field errors.
func detailList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]string {
	t.Helper()
	var body struct {
		Detail []map[string]string `json:"detail"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode detail list: %v", err)
	}
	return body.Detail
}

// detailString decodes an error body whose detail is a plain message.
func detailString(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	return body.Detail
}

func fieldsOf(details []map[string]string) map[string]string {
	out := make(map[string]string, len(details))
	for _, d := range details {
		out[d["field"]] = d["rule"]
	}
	return out
}
