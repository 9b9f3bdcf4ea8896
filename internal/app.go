package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/leaflet/internal/content"
	"github.com/starford/leaflet/internal/index"
	"github.com/starford/leaflet/internal/seed"
	"github.com/starford/leaflet/internal/storage"
)

func newApplication(opts []Option) (*application, error) {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if app.logOutput == nil {
		app.logOutput = os.Stdout
	}
	return app, nil
}

// newLogger builds the structured JSON logger and installs it as default.
func (a *application) newLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(a.logOutput, &slog.HandlerOptions{
		Level: a.config.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// pageSource is an opened content.Source plus the resources it holds.
type pageSource struct {
	content.Source
	dir   *storage.DirSource
	close func() error
}

// openSource opens the page source selected by the configuration.
func (a *application) openSource() (*pageSource, error) {
	noop := func() error { return nil }

	if a.source != nil {
		return &pageSource{Source: a.source, close: noop}, nil
	}

	cfg := a.config.Content
	switch cfg.Source {
	case SourceDir:
		fs, err := storage.NewFS(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("init storage: %w", err)
		}
		dir := storage.NewDirSource(fs)
		return &pageSource{Source: dir, dir: dir, close: noop}, nil

	case SourceSQLite:
		db, err := index.Open(a.config.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("init index: %w", err)
		}
		return &pageSource{Source: db, close: db.Close}, nil

	case SourceSeed, "":
		return &pageSource{Source: seed.Source{}, close: noop}, nil
	}
	return nil, fmt.Errorf("unknown content source %q", cfg.Source)
}

// loadStore opens the configured source and builds the initial store.
// Any construction error aborts startup.
func (a *application) loadStore(ctx context.Context) (*content.Store, *pageSource, error) {
	src, err := a.openSource()
	if err != nil {
		return nil, nil, err
	}
	store, err := content.Load(ctx, src)
	if err != nil {
		_ = src.close()
		return nil, nil, fmt.Errorf("load pages: %w", err)
	}
	return store, src, nil
}
