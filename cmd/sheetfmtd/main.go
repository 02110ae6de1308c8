package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sheetfmt/internal/app"
	"sheetfmt/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath, listen string
	cmd := &cobra.Command{
		Use:          "sheetfmtd",
		Short:        "Serve the spreadsheet formatter HTTP API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logging.New(cfg.Logging)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			w, err := app.NewWire(cfg, log)
			if err != nil {
				return err
			}
			log.Info("starting",
				zap.String("listen", cfg.Listen),
				zap.Strings("locales", cfg.Locales),
				zap.String("presets", w.Presets.Path()))
			return w.ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config, :8080)")
	return cmd
}
