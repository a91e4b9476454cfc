package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/BeppeMagro/gomkm/internal/presentation"
)

var sourcesListCmd = &cobra.Command{
	Use:   "sources:list",
	Short: "List the valid default data sources",
	Long: `List every default data source that passes registry validation, as JSON.

A source qualifies when its directory carries the .source marker and every
.txt file inside declares the required header keys (Ion, AtomicNumber,
MassNumber, SourceProgram, IonizationPotential, Target). Validation is
fail-fast: the first malformed source aborts the whole listing.

Examples:
  # List all valid sources
  gomkm sources:list

  # Parse with jq
  gomkm sources:list | jq '.sources[]'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s := span(cmd.Context(), "registry.AvailableSources")

		sources, err := newRegistry().AvailableSources()
		finishSpan(s, err)
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatSources(presentation.FromSources(sources))
	},
}

func init() {
	rootCmd.AddCommand(sourcesListCmd)
}

// sourceAttr tags spans with the source under operation.
func sourceAttr(source string) attribute.KeyValue {
	return attribute.String("gomkm.source", source)
}
