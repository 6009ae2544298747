package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fundalloc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.validate())
	assert.Equal(t, ":8080", cfg.Server.Addr())
}

func TestLoadWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FUNDALLOC_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeFile(t, `
logging:
  level: debug
  format: json
extract:
  workers: 8
server:
  port: 9000
  read_timeout: 5s
  rate_limit:
    enabled: false
`)
	t.Setenv("FUNDALLOC_SERVER_PORT", "9100")
	t.Setenv("FUNDALLOC_EXTRACT_CANONICAL", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 8, cfg.Extract.Workers)
	assert.True(t, cfg.Extract.Canonical)
	assert.Equal(t, 9100, cfg.Server.Port, "env wins over file")
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout, "keys absent from the file keep defaults")
	assert.False(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, "MutualFund_Summary.xlsx", cfg.Extract.BookName)
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	path := writeFile(t, "extract:\n  workers: 2\n")
	t.Setenv("FUNDALLOC_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Extract.Workers)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		env  map[string]string
	}{
		{
			name: "explicit file missing",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
		},
		{
			name: "malformed yaml",
			path: func(t *testing.T) string { return writeFile(t, "extract: [1, 2") },
		},
		{
			name: "bad env value",
			path: func(t *testing.T) string { return writeFile(t, "") },
			env:  map[string]string{"FUNDALLOC_EXTRACT_WORKERS": "many"},
		},
		{
			name: "zero workers",
			path: func(t *testing.T) string { return writeFile(t, "extract:\n  workers: 0\n") },
		},
		{
			name: "unknown level",
			path: func(t *testing.T) string { return writeFile(t, "logging:\n  level: chatty\n") },
		},
		{
			name: "book name without extension",
			path: func(t *testing.T) string { return writeFile(t, "extract:\n  book_name: summary\n") },
		},
		{
			name: "port out of range",
			env:  map[string]string{"FUNDALLOC_SERVER_PORT": "70000"},
			path: func(t *testing.T) string { return writeFile(t, "") },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.path(t))
			assert.Error(t, err)
		})
	}
}
