package commands

import (
	"context"
	"net/http"
	"time"

	"github.com/bjaus/fmter"
	"github.com/spf13/cobra"

	"sheetfmt/internal/app"
)

var (
	configPath  string
	serverURL   string
	presetsPath string
	output      string
	timeout     time.Duration

	appCtx *app.App
	outFmt fmter.Format
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sheetfmt",
		Short:         "Edit and apply spreadsheet format patterns via a sheetfmtd server",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := fmter.ParseFormat(output)
			if err != nil {
				return err
			}
			outFmt = f

			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.ServerURL = serverURL
			}
			if presetsPath != "" {
				cfg.PresetsPath = presetsPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			appCtx = app.NewFromConfig(cfg, &http.Client{Timeout: timeout})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "server base URL (default from config, http://127.0.0.1:8080)")
	root.PersistentFlags().StringVar(&presetsPath, "presets", "", "preset file (default ~/.sheetfmt/presets.json)")
	root.PersistentFlags().StringVarP(&output, "output", "o", string(fmter.Table), "output format: table, json, yaml, csv, markdown, plain, ...")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")

	root.AddCommand(
		infosCmd(),
		editCmd(),
		formatCmd(),
		menuCmd(),
		samplesCmd(),
		componentsCmd(),
		nextCmd(),
		presetsCmd(),
	)
	return root
}
