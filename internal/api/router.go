package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kevinccbsg/twd-principles/internal/docservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *docservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Documents (read-only: content is authored in the repository).
	r.Get("/documents", h.ListDocuments)
	r.Get("/documents/*", h.GetDocument)

	// Site identity and resolved navigation.
	r.Get("/site", h.GetSite)
	r.Get("/nav", h.GetNavigation)

	// Search.
	r.Get("/search", h.Search)

	// Pre-build validation pass.
	r.Get("/validate", h.Validate)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
