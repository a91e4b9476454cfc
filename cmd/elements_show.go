package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BeppeMagro/gomkm/internal/presentation"
)

var elementsShowCmd = &cobra.Command{
	Use:   "elements:show [symbol...]",
	Short: "Show records from the element lookup table",
	Long: `Load the elements.json lookup table and print it as JSON.

Without arguments the whole table is printed; with symbols only the named
records are printed. Unknown symbols are an error.

Examples:
  gomkm elements:show
  gomkm elements:show C O
  gomkm elements:show H | jq '.H.Z'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s := span(cmd.Context(), "registry.LoadLookupTable")

		table, err := newRegistry().LoadLookupTable()
		finishSpan(s, err)
		if err != nil {
			return err
		}

		if len(args) > 0 {
			selected := make(map[string]map[string]any, len(args))
			for _, symbol := range args {
				record, ok := table[symbol]
				if !ok {
					return fmt.Errorf("element %q not in lookup table", symbol)
				}
				selected[symbol] = record
			}
			table = selected
		}

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatElements(table)
	},
}

func init() {
	rootCmd.AddCommand(elementsShowCmd)
}
