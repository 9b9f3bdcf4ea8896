package content

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/starford/leaflet/internal/apperr"
)

// Store is a frozen set of pages keyed by name.
//
// A Store is built once and never changes afterwards, so any number of
// goroutines may read from it without coordination.
type Store struct {
	pages map[string]*Page
	names []string
}

// NewStore indexes pages by name. It fails on a nil page, a repeated page
// name, or a block id used more than once across all pages.
func NewStore(pages ...*Page) (*Store, error) {
	s := &Store{
		pages: make(map[string]*Page, len(pages)),
		names: make([]string, 0, len(pages)),
	}
	owners := make(map[uuid.UUID]string)
	for i, p := range pages {
		if p == nil {
			return nil, fmt.Errorf("content: page %d is nil", i)
		}
		if _, dup := s.pages[p.name]; dup {
			return nil, fmt.Errorf("content: %w: %q", apperr.ErrDuplicatePage, p.name)
		}
		for _, b := range p.blocks {
			if owner, dup := owners[b.ID()]; dup {
				return nil, fmt.Errorf("content: %w: %s in %q and %q", apperr.ErrDuplicateBlockID, b.ID(), owner, p.name)
			}
			owners[b.ID()] = p.name
		}
		s.pages[p.name] = p
		s.names = append(s.names, p.name)
	}
	slices.Sort(s.names)
	return s, nil
}

// GetPage returns the page whose name equals name exactly. The boolean is
// false when no such page exists; absence is not an error.
func (s *Store) GetPage(name string) (*Page, bool) {
	p, ok := s.pages[name]
	return p, ok
}

// Names returns all page names in lexical order.
func (s *Store) Names() []string {
	return slices.Clone(s.names)
}

// Pages returns all pages ordered by name.
func (s *Store) Pages() []*Page {
	out := make([]*Page, len(s.names))
	for i, n := range s.names {
		out[i] = s.pages[n]
	}
	return out
}

// Len returns the number of pages.
func (s *Store) Len() int { return len(s.pages) }
