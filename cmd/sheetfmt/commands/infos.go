package commands

import (
	"github.com/spf13/cobra"

	"sheetfmt/internal/domain"
)

// infos [name]: list formatters, or show one.
func infosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "infos [name]",
		Short: "List the available formatters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				name, err := domain.ParseFormatterName(args[0])
				if err != nil {
					return err
				}
				info, err := appCtx.Client.Info(cmd.Context(), name)
				if err != nil {
					return err
				}
				return render(cmd, info, []infoRow{infoRow(info)})
			}
			infos, err := appCtx.Client.Infos(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd, infos, rowsOf(infos, func(i domain.Info) infoRow { return infoRow(i) }))
		},
	}
}
