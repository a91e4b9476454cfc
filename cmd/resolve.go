package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/BeppeMagro/gomkm/internal/presentation"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <source> <filename>",
	Short: "Resolve the absolute path of a default data file",
	Long: `Resolve a default .txt file across the two data tiers, as JSON.

The installed tree ($GOMKM_DATA_DIR or ~/.gomkm/data) is tried first, the
local development tree (./data) second; the first tier holding the file wins.

Examples:
  gomkm resolve geant4_11_3_0 carbon.txt
  gomkm resolve mstar_3_12 helium.txt | jq -r '.path'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, filename := args[0], args[1]
		_, s := span(cmd.Context(), "registry.DefaultTxtPath",
			sourceAttr(source), attribute.String("gomkm.filename", filename))

		path, err := newRegistry().DefaultTxtPath(source, filename)
		finishSpan(s, err)
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatResolvedPath(presentation.ResolvedPathDTO{
			Source:   source,
			Filename: filename,
			Path:     path,
		})
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
