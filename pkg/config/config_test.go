package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string   `yaml:"name" env:"LEAFLET_TEST_NAME"`
	Port  int      `yaml:"port" env:"LEAFLET_TEST_PORT"`
	Hosts []string `yaml:"hosts" env:"LEAFLET_TEST_HOSTS" env-separator:","`
}

func (c *testConfig) Validate() error {
	if c.Port == 0 {
		return errors.New("port is required")
	}
	return nil
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("LEAFLET_TEST_EXPANDED", "from-env")
	p := writeConfig(t, "name: ${LEAFLET_TEST_EXPANDED}\nport: 80\n")

	var cfg testConfig
	require.NoError(t, Load(p, &cfg))
	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 80, cfg.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("LEAFLET_TEST_PORT", "9090")
	t.Setenv("LEAFLET_TEST_HOSTS", "a.example,b.example")
	p := writeConfig(t, "name: file\nport: 80\n")

	var cfg testConfig
	require.NoError(t, Load(p, &cfg))
	assert.Equal(t, "file", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"a.example", "b.example"}, cfg.Hosts)
}

func TestLoad_Validates(t *testing.T) {
	p := writeConfig(t, "name: x\n")
	var cfg testConfig
	err := Load(p, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port is required")
}

func TestLoad_MissingFile(t *testing.T) {
	var cfg testConfig
	assert.Error(t, Load(filepath.Join(t.TempDir(), "nope.yaml"), &cfg))
}

func TestLoadOptional_KeepsDefaults(t *testing.T) {
	cfg := testConfig{Name: "default", Port: 8080}
	require.NoError(t, LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"), &cfg))
	assert.Equal(t, testConfig{Name: "default", Port: 8080}, cfg)

	p := writeConfig(t, "port: 81\n")
	require.NoError(t, LoadOptional(p, &cfg))
	assert.Equal(t, 81, cfg.Port)
	assert.Equal(t, "default", cfg.Name)
}
