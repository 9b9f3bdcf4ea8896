package watch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/starford/leaflet/internal/content"
	"github.com/starford/leaflet/internal/storage"
)

// Reloader rebuilds the library from a page directory when its
// fingerprint changes.
type Reloader struct {
	lib    *content.Library
	src    *storage.DirSource
	logger *slog.Logger
	notify func(*content.Store)

	mu   sync.Mutex
	last string
}

// NewReloader returns a Reloader. notify, if non-nil, runs after every
// successful publish.
func NewReloader(lib *content.Library, src *storage.DirSource, logger *slog.Logger, notify func(*content.Store)) *Reloader {
	r := &Reloader{lib: lib, src: src, logger: logger, notify: notify}
	if fp, err := src.Fingerprint(); err == nil {
		r.last = fp
	}
	return r
}

// Reload publishes a fresh store if the directory changed since the last
// successful reload. It reports whether a new store was published.
func (r *Reloader) Reload(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fp, err := r.src.Fingerprint()
	if err != nil {
		return false, err
	}
	if fp == r.last {
		return false, nil
	}

	s, err := r.lib.Reload(ctx, r.src)
	if err != nil {
		return false, err
	}
	r.last = fp

	r.logger.Info("pages reloaded", slog.Int("pages", s.Len()))
	if r.notify != nil {
		r.notify(s)
	}
	return true, nil
}
