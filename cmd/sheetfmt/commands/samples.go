package commands

import (
	"github.com/spf13/cobra"

	"sheetfmt/internal/domain"
)

func samplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "samples <name>",
		Short: "Show a formatter's samples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := domain.ParseFormatterName(args[0])
			if err != nil {
				return err
			}
			samples, err := appCtx.Client.Samples(cmd.Context(), name)
			if err != nil {
				return err
			}
			return render(cmd, samples, rowsOf(samples, toSampleRow))
		},
	}
}
