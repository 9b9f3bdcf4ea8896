package content

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Source produces the full page set. Implementations read from a seed,
// a directory of page files, or a database.
type Source interface {
	Pages(ctx context.Context) ([]*Page, error)
}

// Load reads every page from src and freezes them into a Store.
func Load(ctx context.Context, src Source) (*Store, error) {
	pages, err := src.Pages(ctx)
	if err != nil {
		return nil, fmt.Errorf("content: load: %w", err)
	}
	return NewStore(pages...)
}

// Library publishes Store snapshots. Readers get whichever snapshot is
// current when they call; a reload installs a new one atomically and never
// blocks them.
type Library struct {
	current atomic.Pointer[Store]
}

// NewLibrary returns a Library serving s.
func NewLibrary(s *Store) *Library {
	l := &Library{}
	l.current.Store(s)
	return l
}

// Snapshot returns the current store.
func (l *Library) Snapshot() *Store {
	return l.current.Load()
}

// Publish replaces the current store and returns the previous one.
func (l *Library) Publish(s *Store) *Store {
	return l.current.Swap(s)
}

// Reload builds a new store from src and publishes it. On error the
// current snapshot stays in place.
func (l *Library) Reload(ctx context.Context, src Source) (*Store, error) {
	s, err := Load(ctx, src)
	if err != nil {
		return nil, err
	}
	l.Publish(s)
	return s, nil
}

// GetPage looks name up in the current snapshot.
func (l *Library) GetPage(name string) (*Page, bool) {
	return l.Snapshot().GetPage(name)
}

// Names lists page names of the current snapshot.
func (l *Library) Names() []string {
	return l.Snapshot().Names()
}
