package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kakari.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

log:
  level: "debug"
  format: "text"

cors:
  allowed_origins: "https://a.example, https://b.example"

store:
  enabled: true
  path: "/tmp/kakari-test.db"

analyzer:
  max_input_bytes: 1024
  workers: 2
`

func TestLoad_ValidYAML(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeYAML(t, validYAML))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout, "default applies to unset yaml key")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.Origins())
	assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, cfg.CORS.Methods())
	assert.True(t, cfg.Store.Enabled)
	assert.Equal(t, "/tmp/kakari-test.db", cfg.Store.DBPath())
	assert.Equal(t, 1024, cfg.Analyzer.MaxInputBytes)
	assert.Equal(t, 2, cfg.Analyzer.Workers)
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeYAML(t, validYAML))
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins())
	assert.False(t, cfg.Store.Enabled)
	assert.Equal(t, 65536, cfg.Analyzer.MaxInputBytes)
	assert.Equal(t, 4, cfg.Analyzer.Workers)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: file")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Port: 8080},
			Log:      LogConfig{Format: "json"},
			Analyzer: AnalyzerConfig{MaxInputBytes: 10, Workers: 1},
		}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"max input", func(c *Config) { c.Analyzer.MaxInputBytes = 0 }, "analyzer.max_input_bytes"},
		{"workers", func(c *Config) { c.Analyzer.Workers = 0 }, "analyzer.workers"},
		{"max age", func(c *Config) { c.CORS.MaxAge = -1 }, "cors.max_age"},
	}
	base := valid()
	require.NoError(t, base.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
