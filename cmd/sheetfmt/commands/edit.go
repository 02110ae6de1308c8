package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bjaus/fmter"
	"github.com/spf13/cobra"

	"sheetfmt/internal/domain"
)

// edit <selector>: show components, next component and samples.
func editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <selector>",
		Short: "Parse a selector such as \"number-format-pattern #,##0.00\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edit, err := appCtx.Client.Edit(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if outFmt == fmter.JSON || outFmt == fmter.YAML {
				return render[componentRow](cmd, edit, nil)
			}

			w := cmd.OutOrStdout()
			if edit.Selector != nil {
				fmt.Fprintf(w, "selector: %s\n", edit.Selector)
			}
			if err := render(cmd, edit, rowsOf(edit.TextComponents, toComponentRow)); err != nil {
				return err
			}
			if edit.Next != nil {
				fmt.Fprintf(w, "next: %s\n", alternatives(edit.Next.Alternatives))
			}
			if err := render(cmd, edit, rowsOf(edit.Samples, toSampleRow)); err != nil {
				return err
			}
			if edit.Message != "" {
				return errors.New(edit.Message)
			}
			return nil
		},
	}
}

func toComponentRow(c domain.TextComponent) componentRow { return componentRow(c) }

func toSampleRow(s domain.Sample) sampleRow { return sampleRow(s) }
