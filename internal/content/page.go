package content

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/starford/leaflet/internal/apperr"
)

// Page is a named, versioned document made of blocks in a fixed order.
// A Page never changes once NewPage returns it.
type Page struct {
	name    string
	time    time.Time
	blocks  []Block
	version string
}

// NewPage builds a page from already constructed blocks. The slice is copied,
// so later changes by the caller do not reach the page.
//
// Every block must be non-nil, carry a non-zero id, and have an id unique
// within the page.
func NewPage(name string, t time.Time, blocks []Block, version string) (*Page, error) {
	seen := make(map[uuid.UUID]struct{}, len(blocks))
	for i, b := range blocks {
		if b == nil || b.isNil() {
			return nil, fmt.Errorf("content: page %q block %d: %w", name, i, apperr.ErrNilBlock)
		}
		if b.ID() == uuid.Nil {
			return nil, fmt.Errorf("content: page %q block %d: %w", name, i, apperr.ErrMissingBlockID)
		}
		if _, dup := seen[b.ID()]; dup {
			return nil, fmt.Errorf("content: page %q block %d: %w: %s", name, i, apperr.ErrDuplicateBlockID, b.ID())
		}
		seen[b.ID()] = struct{}{}
	}
	return &Page{
		name:    name,
		time:    t,
		blocks:  slices.Clone(blocks),
		version: version,
	}, nil
}

// Name returns the page key.
func (p *Page) Name() string { return p.name }

// Time returns the descriptive page timestamp.
func (p *Page) Time() time.Time { return p.time }

// Version returns the opaque version label.
func (p *Page) Version() string { return p.version }

// Blocks returns the blocks in construction order. The returned slice is a
// copy; the blocks themselves are immutable.
func (p *Page) Blocks() []Block {
	if p.blocks == nil {
		return []Block{}
	}
	return slices.Clone(p.blocks)
}

// Len returns the number of blocks.
func (p *Page) Len() int { return len(p.blocks) }

// Block returns the block at position i.
func (p *Page) Block(i int) Block { return p.blocks[i] }
