package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, ".finpulse", cfg.Storage.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Pretty)
	assert.Equal(t, "INR", cfg.Portfolio.Currency)
	assert.Equal(t, Duration(5*time.Second), cfg.Portfolio.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFiles_NoFiles(t *testing.T) {
	cfg, err := LoadFromFiles()
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadFromFiles_ValidTOML(t *testing.T) {
	path := writeFile(t, "finpulse.toml", `
[storage]
backend = "sqlite"
path = "/tmp/finpulse.db"

[logging]
level = "debug"
pretty = true

[portfolio]
currency = "USD"
timeout = "250ms"
`)

	cfg, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/finpulse.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
	assert.Equal(t, "USD", cfg.Portfolio.Currency)
	assert.Equal(t, Duration(250*time.Millisecond), cfg.Portfolio.Timeout)
}

func TestLoadFromFiles_Layering(t *testing.T) {
	base := writeFile(t, "base.toml", `
[storage]
backend = "sqlite"
path = "base.db"

[portfolio]
currency = "USD"
`)
	local := writeFile(t, "local.toml", `
[storage]
path = "local.db"
`)
	t.Setenv(EnvCurrency, "EUR")
	t.Setenv(EnvTimeout, "2s")
	t.Setenv(EnvLogPretty, "true")

	cfg, err := LoadFromFiles(base, "", local)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Backend, "kept from the first file")
	assert.Equal(t, "local.db", cfg.Storage.Path, "the second file wins")
	assert.Equal(t, "EUR", cfg.Portfolio.Currency, "the environment wins")
	assert.Equal(t, Duration(2*time.Second), cfg.Portfolio.Timeout)
	assert.True(t, cfg.Logging.Pretty)
	assert.Equal(t, "info", cfg.Logging.Level, "default")
}

func TestLoadFromFiles_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "invalid toml", content: "[storage\nbackend = "},
		{name: "bad duration", content: "[portfolio]\ntimeout = \"soon\""},
		{name: "unknown backend", content: "[storage]\nbackend = \"redis\""},
		{name: "missing path", content: "[storage]\nbackend = \"file\"\npath = \"\""},
		{name: "unknown currency", content: "[portfolio]\ncurrency = \"XXX1\""},
		{name: "zero timeout", content: "[portfolio]\ntimeout = \"0s\""},
		{name: "bad env bool", env: map[string]string{EnvLogPretty: "maybe"}},
		{name: "bad env timeout", env: map[string]string{EnvTimeout: "-"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			var paths []string
			if tc.content != "" {
				paths = append(paths, writeFile(t, "bad.toml", tc.content))
			}
			_, err := LoadFromFiles(paths...)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FINPULSE_STORAGE_BACKEND=memory\n"), 0644))
	t.Chdir(dir)
	// godotenv sets the variable for the process, t.Setenv restores it afterwards.
	t.Setenv(EnvStorageBackend, "")
	require.NoError(t, os.Unsetenv(EnvStorageBackend))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Backend)
}

func TestLoad_NoDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "INR", cfg.Portfolio.Currency)
}
