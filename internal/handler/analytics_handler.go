package handler

import (
	"net/http"
	"strconv"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/internal/validation"
)

// AnalyticsHandler records and lists analytics events.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates an AnalyticsHandler with the given service.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Track handles POST /api/analytics.
func (h *AnalyticsHandler) Track(w http.ResponseWriter, r *http.Request) {
	var ev model.AnalyticsEvent
	if !decodeJSON(w, r, &ev) {
		return
	}
	if err := validation.Struct(&ev); err != nil {
		writeValidationError(w, err)
		return
	}

	id, err := h.analyticsService.Track(r.Context(), &ev)
	if err != nil {
		writeStorageError(w, r, "analytics.track", err)
		return
	}

	writeJSON(w, http.StatusOK, createdResponse{Status: "ok", ID: id})
}

type analyticsListResponse struct {
	Count  int                   `json:"count"`
	Events []repository.Document `json:"events"`
}

// List handles GET /api/analytics?limit=N.
// limit defaults to 100; 0 returns every event.
func (h *AnalyticsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := model.DefaultAnalyticsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, validation.Errors{{
				Field: "limit", Rule: "integer", Message: "must be an integer",
			}})
			return
		}
		if n < 0 {
			writeError(w, http.StatusUnprocessableEntity, validation.Errors{{
				Field: "limit", Rule: "min", Message: "must be at least 0",
			}})
			return
		}
		limit = n
	}

	events, err := h.analyticsService.List(r.Context(), limit)
	if err != nil {
		writeStorageError(w, r, "analytics.list", err)
		return
	}

	// Return [] not null for empty lists
	if events == nil {
		events = []repository.Document{}
	}
	writeJSON(w, http.StatusOK, analyticsListResponse{Count: len(events), Events: events})
}
