package index

import (
	"context"

	"github.com/starford/leaflet/internal/content"
)

// PageIndex is the set of operations the import command and the server
// need from the page database.
type PageIndex interface {
	content.Source
	ReplacePages(ctx context.Context, pages []*content.Page) error
	PageNames(ctx context.Context) ([]string, error)
	Close() error
}

// Verify *DB satisfies PageIndex at compile time.
var _ PageIndex = (*DB)(nil)
