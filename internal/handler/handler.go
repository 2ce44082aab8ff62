package handler

import (
	"net/http"

	"github.com/portfolio/backend/internal/service"
)

// rootMessage is returned by GET /.
const rootMessage = "Viren Mirpuri Portfolio API"

// Handler serves the service-level endpoints: the root banner and the
// store diagnostics.
type Handler struct {
	diagnostics service.DiagnosticsService
}

func New(diagnostics service.DiagnosticsService) *Handler {
	return &Handler{diagnostics: diagnostics}
}

// CORS allows every origin, method and header. Preflight requests are
// answered here with 204 and never reach the router.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "*")
		h.Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
				h.Set("Access-Control-Allow-Headers", reqHeaders)
			}
			h.Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
