package commands

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"

	"sheetfmt/internal/domain"
)

// format <selector> <value>...: format each value with one selector.
func formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <selector> <value>...",
		Short: "Format values; JSON literals are sent as numbers or booleans",
		Example: `  sheetfmt format "number-format-pattern #,##0.00" 1234.5 -7
  sheetfmt format "date-format-pattern d mmm yyyy" 2024-01-31 45322`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, err := domain.ParseSelector(args[0])
			if err != nil {
				return err
			}
			requests := make([]domain.FormatRequest, len(args)-1)
			for i, arg := range args[1:] {
				requests[i] = domain.FormatRequest{Selector: selector, Value: parseValue(arg)}
			}

			results, err := appCtx.Client.Format(cmd.Context(), requests)
			if err != nil {
				return err
			}
			rows := make([]formattedRow, len(results))
			for i, r := range results {
				rows[i] = formattedRow{Input: args[i+1], FormattedValue: r}
			}
			return render(cmd, results, rows)
		},
	}
}

// parseValue treats a JSON number, boolean or quoted string as such and
// anything else as plain text.
func parseValue(arg string) any {
	dec := json.NewDecoder(bytes.NewReader([]byte(arg)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return arg
	}
	switch v.(type) {
	case json.Number, bool, string:
		return v
	default:
		return arg
	}
}
