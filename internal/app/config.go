package app

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"sheetfmt/internal/logging"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SHEETFMT_"

// Config holds the options shared by sheetfmtd and the sheetfmt CLI.
type Config struct {
	Listen          string   `yaml:"listen"`           // server listen address, e.g. :8080
	PublicURL       string   `yaml:"public_url"`       // prefix of Info URLs; empty gives relative URLs
	Locales         []string `yaml:"locales"`          // BCP 47 tags; the first is the fallback
	PresetsPath     string   `yaml:"presets"`          // JSON file of menu presets
	MaxBodyBytes    int64    `yaml:"max_body_bytes"`   // request body limit
	ReadTimeout     string   `yaml:"read_timeout"`     // e.g. "10s"
	WriteTimeout    string   `yaml:"write_timeout"`    // e.g. "10s"
	ShutdownTimeout string   `yaml:"shutdown_timeout"` // graceful shutdown budget

	ServerURL string `yaml:"server_url"` // CLI target, e.g. http://127.0.0.1:8080

	Logging logging.Config `yaml:"logging"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Listen:          ":8080",
		Locales:         []string{"en-US", "en-GB", "en-AU", "de", "fr"},
		PresetsPath:     defaultPresetsPath(),
		MaxBodyBytes:    1 << 20,
		ReadTimeout:     "10s",
		WriteTimeout:    "10s",
		ShutdownTimeout: "5s",
		ServerURL:       "http://127.0.0.1:8080",
		Logging:         logging.Config{Level: "info", Format: "json"},
	}
}

func defaultPresetsPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".sheetfmt", "presets.json")
	}
	return filepath.Join(dir, ".sheetfmt", "presets.json")
}

// LoadConfig reads path over the defaults and applies environment
// overrides. A missing file, or an empty path, leaves the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies SHEETFMT_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvPrefix + "LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv(EnvPrefix + "PUBLIC_URL"); v != "" {
		c.PublicURL = v
	}
	if v := os.Getenv(EnvPrefix + "LOCALES"); v != "" {
		c.Locales = nil
		for _, tag := range strings.Split(v, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				c.Locales = append(c.Locales, tag)
			}
		}
	}
	if v := os.Getenv(EnvPrefix + "PRESETS"); v != "" {
		c.PresetsPath = v
	}
	if v := os.Getenv(EnvPrefix + "MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sMAX_BODY_BYTES: %w", EnvPrefix, err)
		}
		c.MaxBodyBytes = n
	}
	if v := os.Getenv(EnvPrefix + "SERVER"); v != "" {
		c.ServerURL = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return errors.New("listen address is empty")
	}
	if _, err := c.LocaleTags(); err != nil {
		return err
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive, got %d", c.MaxBodyBytes)
	}
	for name, v := range map[string]string{
		"read_timeout":     c.ReadTimeout,
		"write_timeout":    c.WriteTimeout,
		"shutdown_timeout": c.ShutdownTimeout,
	} {
		if v == "" {
			continue
		}
		if d, err := time.ParseDuration(v); err != nil || d < 0 {
			return fmt.Errorf("invalid %s %q", name, v)
		}
	}
	if c.PublicURL != "" {
		if err := checkHTTPURL("public_url", c.PublicURL); err != nil {
			return err
		}
	}
	if err := checkHTTPURL("server_url", c.ServerURL); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

func checkHTTPURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s %q is not an http(s) URL", name, raw)
	}
	return nil
}

// LocaleTags parses Locales; an empty list means English only.
func (c *Config) LocaleTags() ([]language.Tag, error) {
	if len(c.Locales) == 0 {
		return []language.Tag{language.English}, nil
	}
	tags := make([]language.Tag, 0, len(c.Locales))
	for _, s := range c.Locales {
		tag, err := language.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", s, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// ReadTimeoutDuration returns ReadTimeout, or 10s when unset or invalid.
func (c *Config) ReadTimeoutDuration() time.Duration {
	return parseDuration(c.ReadTimeout, 10*time.Second)
}

// WriteTimeoutDuration returns WriteTimeout, or 10s when unset or invalid.
func (c *Config) WriteTimeoutDuration() time.Duration {
	return parseDuration(c.WriteTimeout, 10*time.Second)
}

// ShutdownTimeoutDuration returns ShutdownTimeout, or 5s when unset or invalid.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	return parseDuration(c.ShutdownTimeout, 5*time.Second)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
