package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sheetfmt/internal/domain"
)

// presets list|add|rm: edit the local preset file the server's menu reads.
func presetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage menu presets",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List presets",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				presets, err := appCtx.Presets.ListPresets()
				if err != nil {
					return err
				}
				if presets == nil {
					presets = []domain.MenuEntry{}
				}
				return render(cmd, presets, rowsOf(presets, toMenuRow))
			},
		},
		&cobra.Command{
			Use:   "add <label> <selector>",
			Short: "Add or replace a preset",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				selector, err := domain.ParseSelector(strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				if err := appCtx.Presets.SavePreset(domain.MenuEntry{Label: args[0], Selector: selector}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %q\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <label>",
			Short: "Remove a preset",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				removed, err := appCtx.Presets.DeletePreset(args[0])
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("no preset %q", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %q\n", args[0])
				return nil
			},
		},
	)
	return cmd
}
