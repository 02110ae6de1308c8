package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sheetfmt/internal/domain"
)

func componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components <selector>",
		Short: "Split a selector's pattern into text components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, err := domain.ParseSelector(strings.Join(args, " "))
			if err != nil {
				return err
			}
			comps, err := appCtx.Client.TextComponents(cmd.Context(), selector)
			if err != nil {
				return err
			}
			return render(cmd, comps, rowsOf(comps, toComponentRow))
		},
	}
}

// next <selector>: what may be appended to the pattern.
func nextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next <selector>",
		Short: "Suggest the next text component for a selector",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, err := domain.ParseSelector(strings.Join(args, " "))
			if err != nil {
				return err
			}
			next, err := appCtx.Client.NextTextComponent(cmd.Context(), selector)
			if err != nil {
				return err
			}
			if next == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "pattern is complete")
				return render[componentRow](cmd, next, nil)
			}
			return render(cmd, next, []componentRow{componentRow(*next)})
		},
	}
}
