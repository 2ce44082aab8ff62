package handler

import (
	"net/http"
)

type rootResponse struct {
	Message string `json:"message"`
}

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{Message: rootMessage})
}

// Diagnostics handles GET /test. It always answers 200; store problems are
// described in the body.
func (h *Handler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.diagnostics.Report(r.Context()))
}
