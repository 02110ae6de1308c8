package app

import (
	"net/http"

	"go.uber.org/zap"

	"sheetfmt/internal/client"
	"sheetfmt/internal/domain"
	"sheetfmt/internal/logging"
	"sheetfmt/internal/store"
)

// App is what CLI commands work with: a server client and the local
// preset file.
type App struct {
	Client  domain.FormatterClient
	Presets domain.PresetStore
}

func New(client domain.FormatterClient, presets domain.PresetStore) *App {
	return &App{
		Client:  client,
		Presets: presets,
	}
}

// NewFromConfig builds an App talking to cfg.ServerURL. hc may be nil.
func NewFromConfig(cfg *Config, hc *http.Client) *App {
	return New(client.NewHTTP(cfg.ServerURL, hc), store.NewPresetFileStore(cfg.PresetsPath))
}

func newLogger(cfg *Config) (*zap.Logger, error) {
	return logging.New(cfg.Logging)
}
