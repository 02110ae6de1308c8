package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Listen, cfg.Listen)
	assert.Equal(t, def.Locales, cfg.Locales)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheetfmt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: 127.0.0.1:9000
public_url: https://fmt.example.com
locales: [de-CH, en]
max_body_bytes: 4096
read_timeout: 2s
logging:
  level: debug
  format: console
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, "https://fmt.example.com", cfg.PublicURL)
	assert.Equal(t, int64(4096), cfg.MaxBodyBytes)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeoutDuration())
	assert.Equal(t, 10*time.Second, cfg.WriteTimeoutDuration())
	assert.Equal(t, "debug", cfg.Logging.Level)

	tags, err := cfg.LocaleTags()
	require.NoError(t, err)
	assert.Equal(t, []language.Tag{language.MustParse("de-CH"), language.English}, tags)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed"), 0o600))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SHEETFMT_LISTEN", ":9999")
	t.Setenv("SHEETFMT_LOCALES", "fr, de ,")
	t.Setenv("SHEETFMT_MAX_BODY_BYTES", "10")
	t.Setenv("SHEETFMT_SERVER", "http://svc:1")
	t.Setenv("SHEETFMT_LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Listen)
	assert.Equal(t, []string{"fr", "de"}, cfg.Locales)
	assert.Equal(t, int64(10), cfg.MaxBodyBytes)
	assert.Equal(t, "http://svc:1", cfg.ServerURL)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestEnvOverrides_BadNumber(t *testing.T) {
	t.Setenv("SHEETFMT_MAX_BODY_BYTES", "lots")

	_, err := LoadConfig("")
	assert.ErrorContains(t, err, "SHEETFMT_MAX_BODY_BYTES")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty listen", func(c *Config) { c.Listen = "" }, "listen address is empty"},
		{"bad locale", func(c *Config) { c.Locales = []string{"not a locale"} }, `invalid locale "not a locale"`},
		{"zero body", func(c *Config) { c.MaxBodyBytes = 0 }, "max_body_bytes must be positive"},
		{"bad timeout", func(c *Config) { c.WriteTimeout = "soon" }, `invalid write_timeout "soon"`},
		{"bad public url", func(c *Config) { c.PublicURL = "ftp://x" }, "public_url"},
		{"bad server url", func(c *Config) { c.ServerURL = "localhost" }, "server_url"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, `unknown log level "loud"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestLocaleTags_EmptyMeansEnglish(t *testing.T) {
	tags, err := (&Config{}).LocaleTags()
	require.NoError(t, err)
	assert.Equal(t, []language.Tag{language.English}, tags)
}
