package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/leaflet/internal/content"
	"github.com/starford/leaflet/internal/index"
	"github.com/starford/leaflet/internal/mcpserver"
	"github.com/starford/leaflet/internal/resolver"
	"github.com/starford/leaflet/internal/storage"
)

// ErrSameSource is returned when import would copy the database onto itself.
var ErrSameSource = errors.New("content source is already sqlite")

// RunMCP serves the configured pages over MCP on stdin/stdout.
// Logs go to stderr unless WithLogOutput says otherwise.
func RunMCP(ctx context.Context, opts ...Option) error {
	app, err := newApplication(append([]Option{WithLogOutput(os.Stderr)}, opts...))
	if err != nil {
		return err
	}
	logger := app.newLogger()

	store, src, err := app.loadStore(ctx)
	if err != nil {
		return err
	}
	defer src.close()

	logger.Info("MCP server starting", slog.Int("pages", store.Len()))

	res := resolver.New(content.NewLibrary(store), logger)
	return mcpserver.New(res, app.config.App.Version).ServeStdio()
}

// Import copies every page of the configured source into the SQLite
// database, replacing what was there.
func Import(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	if app.source == nil && app.config.Content.Source == SourceSQLite {
		return fmt.Errorf("import: %w", ErrSameSource)
	}
	logger := app.newLogger()

	store, src, err := app.loadStore(ctx)
	if err != nil {
		return err
	}
	defer src.close()

	db, err := index.Open(app.config.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	if err := db.ReplacePages(ctx, store.Pages()); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	logger.Info("Pages imported",
		slog.Int("pages", store.Len()),
		slog.String("sqlite_path", app.config.SQLite.Path))
	return nil
}

// Export writes every page of the configured source as a YAML file under dir.
func Export(ctx context.Context, dir string, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	logger := app.newLogger()

	store, src, err := app.loadStore(ctx)
	if err != nil {
		return err
	}
	defer src.close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	fs, err := storage.NewFS(dir)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	if err := storage.Export(fs, store.Pages()); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	logger.Info("Pages exported", slog.Int("pages", store.Len()), slog.String("dir", dir))
	return nil
}
