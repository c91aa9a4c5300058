package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config dir at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{"COALITION_DB_PATH", "COALITION_CATALOG", "COALITION_ADDR", "COALITION_MAX_SIZE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	return home
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, 3, cfg.Search.MaxSize)
	assert.Equal(t, 5, cfg.Search.SuggestionLimit)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	isolate(t)

	path := writeFile(t, `
db_path: /tmp/coalition-test.db
catalog_path: ./catalog.yaml
log_level: debug
search:
  max_size: 4
  suggestion_limit: 10
  prune: false
server:
  addr: 127.0.0.1:9090
  static_path: ./web
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/coalition-test.db", cfg.DBPath)
	assert.Equal(t, "./catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, SearchConfig{MaxSize: 4, SuggestionLimit: 10, Prune: false}, cfg.Search)
	assert.Equal(t, ServerConfig{Addr: "127.0.0.1:9090", StaticPath: "./web"}, cfg.Server)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	isolate(t)

	path := writeFile(t, "search:\n  max_size: 2\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Search.MaxSize)
	assert.Equal(t, 5, cfg.Search.SuggestionLimit)
	assert.Equal(t, Default().DBPath, cfg.DBPath)
	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("COALITION_DB_PATH", "/tmp/env.db")
	t.Setenv("COALITION_CATALOG", "/tmp/catalog.yaml")
	t.Setenv("COALITION_ADDR", "127.0.0.1:7000")
	t.Setenv("COALITION_MAX_SIZE", "5")
	t.Setenv("LOG_LEVEL", "warn")

	path := writeFile(t, "db_path: /tmp/file.db\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, "/tmp/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
	assert.Equal(t, 5, cfg.Search.MaxSize)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "search: [\n"},
		{"zero max size", "search:\n  max_size: 0\n"},
		{"max size too large", "search:\n  max_size: 9\n"},
		{"zero suggestion limit", "search:\n  suggestion_limit: 0\n"},
		{"empty addr", "server:\n  addr: \"\"\n"},
		{"unknown log level", "log_level: chatty\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, err := Load(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestWriteDefault(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path, false))
	assert.Error(t, WriteDefault(path, false), "existing file must not be overwritten")
	require.NoError(t, WriteDefault(path, true))

	// The template is valid and matches the built-in defaults.
	cfg, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("template mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	assert.False(t, LoadEnvFile(filepath.Join(dir, "missing.env")))

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("COALITION_TEST_VALUE=from-dotenv\n"), 0o644))
	t.Setenv("COALITION_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("COALITION_TEST_VALUE"))

	assert.True(t, LoadEnvFile(envFile))
	assert.Equal(t, "from-dotenv", os.Getenv("COALITION_TEST_VALUE"))
}
