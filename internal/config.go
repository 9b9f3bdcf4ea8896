package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Page source kinds.
const (
	SourceSeed   = "seed"
	SourceDir    = "dir"
	SourceSQLite = "sqlite"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Content ContentConfig     `yaml:"content"`
	SQLite  SQLiteConfig      `yaml:"sqlite"`
	Auth    AuthConfig        `yaml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Content.Validate(); err != nil {
		return err
	}
	if c.Content.Source == SourceSQLite {
		if err := c.SQLite.Validate(); err != nil {
			return err
		}
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	Version  string     `yaml:"version"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port" env:"LEAFLET_HTTP_PORT"`
	// AllowedOrigins feeds the CORS policy. Empty allows any origin.
	AllowedOrigins []string `yaml:"allowed_origins" env:"LEAFLET_HTTP_ALLOWED_ORIGINS" env-separator:","`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// ContentConfig selects where pages are loaded from.
//
// Source is one of:
//   - "seed" (default): the built-in home and impressum pages.
//   - "dir": YAML page files under Dir; Watch enables hot reload.
//   - "sqlite": the pages table of the SQLite database.
type ContentConfig struct {
	Source string `yaml:"source" env:"LEAFLET_CONTENT_SOURCE"`
	Dir    string `yaml:"dir" env:"LEAFLET_CONTENT_DIR"`
	Watch  bool   `yaml:"watch" env:"LEAFLET_CONTENT_WATCH"`
}

// Validate validates the content configuration.
func (c *ContentConfig) Validate() error {
	if c.Source == "" {
		c.Source = SourceSeed
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Source, validation.Required, validation.In(SourceSeed, SourceDir, SourceSQLite)),
		validation.Field(&c.Dir, validation.When(c.Source == SourceDir, validation.Required)),
	)
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"LEAFLET_SQLITE_PATH"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// AuthConfig holds authentication configuration.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode" env:"LEAFLET_AUTH_MODE"`
	Token string `yaml:"token" env:"LEAFLET_AUTH_TOKEN"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			Version:  "0.1.0",
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Content: ContentConfig{
			Source: SourceSeed,
			Dir:    "./pages",
		},
		SQLite: SQLiteConfig{
			Path: "./leaflet.db",
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
