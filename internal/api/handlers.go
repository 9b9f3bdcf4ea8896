package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/starford/leaflet/internal/apperr"
	"github.com/starford/leaflet/internal/resolver"
)

// Handler holds API route handlers.
type Handler struct {
	res *resolver.Resolver
}

// NewHandler creates a new Handler.
func NewHandler(res *resolver.Resolver) *Handler {
	return &Handler{res: res}
}

// pageName extracts the page name from the URL (everything after /api/pages/).
// Supports encoded slashes (e.g. legal%2Fimpressum).
//
// chi routes on RawPath when the request carries one, so the wildcard is
// still escaped and is decoded here. Otherwise it is already decoded and
// must not be decoded again.
func pageName(r *http.Request) string {
	raw := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if raw == "" || r.URL.RawPath == "" {
		return raw
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// ListPages handles GET /api/pages.
//
//	@Summary		List page names
//	@Tags			pages
//	@Produce		json
//	@Success		200		{object}	PageListResponse
//	@Security		BearerAuth
//	@Router			/pages [get]
func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	names := h.res.PageNames(r.Context())
	writeJSON(w, r, http.StatusOK, PageListResponse{Pages: names, Total: len(names)})
}

// GetPage handles GET /api/pages/*.
//
//	@Summary		Get a page by exact name
//	@Tags			pages
//	@Produce		json
//	@Param			name	path		string	true	"Page name"
//	@Success		200		{object}	PageResponse
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/pages/{name} [get]
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	name := pageName(r)
	if name == "" {
		writeJSON(w, r, http.StatusBadRequest, errorBody("name is required"))
		return
	}
	view, ok := h.res.ResolveView(r.Context(), name)
	if !ok {
		writeJSON(w, r, http.StatusNotFound, errorBody(apperr.ErrNotFound.Error()))
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}
