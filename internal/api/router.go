package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/leaflet/internal/resolver"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(res *resolver.Resolver, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(res)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Get("/pages", h.ListPages)
	r.Get("/pages/*", h.GetPage)

	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
