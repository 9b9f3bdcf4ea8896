package api

import "github.com/starford/leaflet/internal/resolver"

// PageResponse is the full page payload (aliased from the resolver layer).
type PageResponse = resolver.PageView

// PageListResponse lists every resolvable page name.
type PageListResponse struct {
	Pages []string `json:"pages" validate:"required"`
	Total int      `json:"total" example:"2" validate:"required"`
}
