package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/content"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

// newTestServer wires the real services over store, the way cmd/server does.
func newTestServer(t *testing.T, store repository.DocumentStore, db config.DatabaseConfig) *httptest.Server {
	t.Helper()
	articles, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	router := NewRouter(Services{
		Contact:     service.NewContactService(store),
		Analytics:   service.NewAnalyticsService(store),
		Diagnostics: service.NewDiagnosticsService(store, db),
		Articles:    articles,
	}, slog.New(slog.NewJSONHandler(io.Discard, nil)))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var out map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
	}
	return resp, out
}

func TestRouter_ConnectedStore(t *testing.T) {
	store := repository.NewMemoryDocumentStore()
	srv := newTestServer(t, store, config.DatabaseConfig{URL: "memory://", Name: "portfolio"})

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/", "")
	if resp.StatusCode != http.StatusOK || body["message"] != "Viren Mirpuri Portfolio API" {
		t.Fatalf("GET /: %d %v", resp.StatusCode, body)
	}
	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing nosniff header")
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header")
	}

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/contact",
		`{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello there"}`)
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("POST /api/contact: %d %v", resp.StatusCode, body)
	}
	contactID, _ := body["id"].(string)
	if contactID == "" {
		t.Fatal("expected a non-empty id")
	}

	ids := map[string]bool{contactID: true}
	for _, ev := range []string{`{"type":"page_view","label":"home"}`, `{"type":"section_view"}`, `{"type":"click","meta":{"x":1}}`} {
		resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/analytics", ev)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("POST /api/analytics %s: %d %v", ev, resp.StatusCode, body)
		}
		id, _ := body["id"].(string)
		if ids[id] {
			t.Errorf("duplicate id %q", id)
		}
		ids[id] = true
	}

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/analytics?limit=2", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/analytics: %d", resp.StatusCode)
	}
	if body["count"] != float64(2) {
		t.Errorf("expected count=2, got %v", body["count"])
	}
	events := body["events"].([]any)
	first := events[0].(map[string]any)
	if first["type"] != "page_view" || first["label"] != "home" {
		t.Errorf("unexpected first event %v", first)
	}
	if _, ok := first["_id"].(string); !ok {
		t.Errorf("expected string _id, got %T", first["_id"])
	}
	if _, ok := first["created_at"].(string); !ok {
		t.Errorf("expected string created_at, got %T", first["created_at"])
	}

	_, body = doJSON(t, http.MethodGet, srv.URL+"/api/analytics", "")
	if body["count"] != float64(3) {
		t.Errorf("expected count=3, got %v", body["count"])
	}

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/test", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /test: %d", resp.StatusCode)
	}
	if body["database"] != service.StatusWorking || body["connection_status"] != service.StatusConnected {
		t.Errorf("unexpected diagnostics %v", body)
	}
	cols, _ := body["collections"].([]any)
	if len(cols) != 2 {
		t.Errorf("expected 2 collections, got %v", body["collections"])
	}
}

func TestRouter_UnavailableStore(t *testing.T) {
	reason := &repository.ConnectError{Stage: repository.StageConfig, Err: errors.New("DATABASE_URL is not set")}
	store := repository.NewUnavailableStore(reason)
	srv := newTestServer(t, store, config.DatabaseConfig{})

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/contact",
		`{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello there"}`)
	if resp.StatusCode != http.StatusInternalServerError || body["detail"] != "database not available" {
		t.Errorf("POST /api/contact: %d %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/analytics", `{"type":"click"}`)
	if resp.StatusCode != http.StatusInternalServerError || body["detail"] != "database not available" {
		t.Errorf("POST /api/analytics: %d %v", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/analytics", "")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("GET /api/analytics: %d", resp.StatusCode)
	}

	// Validation still runs before the store is touched.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/contact", `{"name":"A"}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("invalid contact: expected 422, got %d", resp.StatusCode)
	}

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/test", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /test: %d", resp.StatusCode)
	}
	want := map[string]any{
		"backend":           service.StatusRunning,
		"database":          service.StatusNotAvailable,
		"database_url":      service.StatusNotSet,
		"database_name":     service.StatusNotSet,
		"connection_status": service.StatusNotConnected,
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("%s = %v, want %v", k, body[k], v)
		}
	}
	if cols, ok := body["collections"].([]any); !ok || len(cols) != 0 {
		t.Errorf("expected empty collections, got %v", body["collections"])
	}
	dbErr, _ := body["database_error"].(map[string]any)
	if dbErr["stage"] != repository.StageConfig {
		t.Errorf("unexpected database_error %v", body["database_error"])
	}

	// Articles never touch the store.
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/articles?category=Gaming", nil)
	aresp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /api/articles: %v", err)
	}
	defer aresp.Body.Close()
	var articles []map[string]any
	if err := json.NewDecoder(aresp.Body).Decode(&articles); err != nil {
		t.Fatalf("decode articles: %v", err)
	}
	if aresp.StatusCode != http.StatusOK || len(articles) != 1 || articles[0]["category"] != "Gaming" {
		t.Errorf("GET /api/articles: %d %v", aresp.StatusCode, articles)
	}
}

func TestRouter_PreflightAndUnknownRoutes(t *testing.T) {
	srv := newTestServer(t, repository.NewMemoryDocumentStore(), config.DatabaseConfig{})

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/analytics", nil)
	req.Header.Set("Origin", "https://portfolio.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("OPTIONS: expected 204, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("OPTIONS: missing Allow-Origin")
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/nope", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET /nope: expected 404, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/contact", "")
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("DELETE /api/contact: expected 405, got %d", resp.StatusCode)
	}
}
