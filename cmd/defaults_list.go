package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/BeppeMagro/gomkm/internal/presentation"
)

var defaultsListCmd = &cobra.Command{
	Use:   "defaults:list <source>",
	Short: "List the .txt files of one data source",
	Long: `List the stopping-power .txt files directly inside a named source, as JSON.

Headers are not re-validated here; run 'gomkm sources:list' for validation.

Examples:
  gomkm defaults:list geant4_11_3_0
  gomkm defaults:list mstar_3_12 | jq '.files[]'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]
		_, s := span(cmd.Context(), "registry.AvailableDefaults", sourceAttr(source))

		files, err := newRegistry().AvailableDefaults(source)
		finishSpan(s, err)
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatDefaults(presentation.FromDefaults(source, files))
	},
}

func init() {
	rootCmd.AddCommand(defaultsListCmd)
}
