// Package resolver is the read entry point transports use to turn a page
// name into a document tree and that tree into a wire-ready projection.
package resolver

import (
	"context"
	"log/slog"

	"github.com/starford/leaflet/internal/content"
)

// PageGetter is the lookup a Resolver is bound to. Both *content.Store and
// *content.Library satisfy it.
type PageGetter interface {
	GetPage(name string) (*content.Page, bool)
	Names() []string
}

// Resolver answers page queries against exactly one PageGetter.
type Resolver struct {
	pages  PageGetter
	logger *slog.Logger
}

// New binds a Resolver to pages. A nil logger discards debug output.
func New(pages PageGetter, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{pages: pages, logger: logger}
}

// ResolvePage returns the page named exactly name. The boolean is false
// when no such page exists.
func (r *Resolver) ResolvePage(ctx context.Context, name string) (*content.Page, bool) {
	p, ok := r.pages.GetPage(name)
	if !ok {
		r.logger.DebugContext(ctx, "page not found", slog.String("name", name))
	}
	return p, ok
}

// PageNames lists every resolvable name in lexical order.
func (r *Resolver) PageNames(_ context.Context) []string {
	return r.pages.Names()
}

// ResolveView resolves name and projects the result.
func (r *Resolver) ResolveView(ctx context.Context, name string) (*PageView, bool) {
	p, ok := r.ResolvePage(ctx, name)
	if !ok {
		return nil, false
	}
	v := Project(p)
	return &v, true
}
