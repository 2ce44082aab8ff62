package handler

import (
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/service"
)

// Services holds everything the router dispatches to.
type Services struct {
	Contact     service.ContactService
	Analytics   service.AnalyticsService
	Diagnostics service.DiagnosticsService
	Articles    ArticleLister
}

// NewRouter registers every route and wraps the mux in the middleware
// chain: request logging, panic recovery, CORS, security headers.
func NewRouter(s Services, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	h := New(s.Diagnostics)
	contactHandler := NewContactHandler(s.Contact)
	analyticsHandler := NewAnalyticsHandler(s.Analytics)
	articleHandler := NewArticleHandler(s.Articles)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /test", h.Diagnostics)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("POST /api/analytics", analyticsHandler.Track)
	mux.HandleFunc("GET /api/analytics", analyticsHandler.List)
	mux.HandleFunc("GET /api/articles", articleHandler.List)

	var handler http.Handler = mux
	handler = SecurityHeaders(handler)
	handler = CORS(handler)
	handler = Recoverer(logger)(handler)
	handler = RequestLogger(logger)(handler)
	return handler
}
