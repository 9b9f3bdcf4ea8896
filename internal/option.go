package internal

import (
	"io"

	"github.com/starford/leaflet/internal/content"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config    *Config
	logOutput io.Writer
	source    content.Source
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithLogOutput redirects the JSON log stream. The default is stdout.
func WithLogOutput(w io.Writer) Option {
	return func(a *application) {
		a.logOutput = w
	}
}

// WithSource replaces the page source selected by the configuration.
func WithSource(src content.Source) Option {
	return func(a *application) {
		a.source = src
	}
}
