package commands

import (
	"github.com/spf13/cobra"

	"sheetfmt/internal/domain"
)

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List sample selectors and presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			menu, err := appCtx.Client.Menu(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd, menu, rowsOf(menu, toMenuRow))
		},
	}
}

func toMenuRow(e domain.MenuEntry) menuRow { return menuRow(e) }
