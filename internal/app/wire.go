package app

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sheetfmt/internal/formatting"
	"sheetfmt/internal/httpapi"
	formattersvc "sheetfmt/internal/services/formatter"
	"sheetfmt/internal/store"
)

// Wire bundles the server-side dependency graph.
type Wire struct {
	Config   *Config
	Log      *zap.Logger
	Provider *formatting.Provider
	Presets  *store.PresetFileStore
	Service  *formattersvc.Service
	Handler  *httpapi.Server
}

// NewWire validates cfg and constructs the dependency graph. log may be
// nil, in which case one is built from cfg.Logging.
func NewWire(cfg *Config, log *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		var err error
		if log, err = newLogger(cfg); err != nil {
			return nil, err
		}
	}
	locales, err := cfg.LocaleTags()
	if err != nil {
		return nil, err
	}

	provider := formatting.NewProvider(cfg.PublicURL, locales...)
	presets := store.NewPresetFileStore(cfg.PresetsPath)
	svc := formattersvc.New(provider, presets, log.Named("formatter"))
	handler := httpapi.New(svc, httpapi.Options{
		Locales:      provider.Locales(),
		MaxBodyBytes: cfg.MaxBodyBytes,
		Logger:       log.Named("http"),
	})

	return &Wire{
		Config:   cfg,
		Log:      log,
		Provider: provider,
		Presets:  presets,
		Service:  svc,
		Handler:  handler,
	}, nil
}

// Serve runs the HTTP server on ln until ctx is cancelled, then shuts it
// down gracefully within the configured timeout.
func (w *Wire) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      w.Handler,
		ReadTimeout:  w.Config.ReadTimeoutDuration(),
		WriteTimeout: w.Config.WriteTimeoutDuration(),
		ErrorLog:     zap.NewStdLog(w.Log.Named("http")),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		w.Log.Info("listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), w.Config.ShutdownTimeoutDuration())
		defer cancel()
		w.Log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// ListenAndServe listens on cfg.Listen and calls Serve.
func (w *Wire) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", w.Config.Listen)
	if err != nil {
		return err
	}
	return w.Serve(ctx, ln)
}
