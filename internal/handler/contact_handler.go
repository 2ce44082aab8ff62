package handler

import (
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/internal/validation"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// createdResponse is returned after a document was stored.
type createdResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// Submit handles POST /api/contact.
// name and subject need 2+ characters, message 5+, email a valid address.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.ContactSubmission
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.Struct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	id, err := h.contactService.Submit(r.Context(), &req)
	if err != nil {
		writeStorageError(w, r, "contact.submit", err)
		return
	}

	writeJSON(w, http.StatusOK, createdResponse{Status: "ok", ID: id})
}
