package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"

	"github.com/BeppeMagro/gomkm/data"
	"github.com/BeppeMagro/gomkm/internal/config"
	"github.com/BeppeMagro/gomkm/internal/registry"
)

var (
	installForce bool
	installDir   string
)

var dataInstallCmd = &cobra.Command{
	Use:   "data:install",
	Short: "Materialize the bundled reference data into the installed tree",
	Long: `Copy the reference data compiled into the gomkm binary (the default
stopping-power tables and elements.json) into the installed data tree, the
first tier of path resolution.

Without --dir the tree goes to $GOMKM_DATA_DIR or ~/.gomkm/data. Existing
files are kept unless --force is given. An explicit --dir is remembered as
data_dir in the config file.

Examples:
  gomkm data:install
  gomkm data:install --force
  gomkm data:install --dir /opt/gomkm/data`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dst := installDir
		if dst == "" {
			var err error
			dst, err = registry.InstallDir{Dir: cfg.DataDir}.Resolve()
			if err != nil {
				return fmt.Errorf("locating install directory: %w", err)
			}
		}

		_, s := span(cmd.Context(), "data.Install",
			attribute.String("gomkm.dst", dst),
			attribute.Bool("gomkm.force", installForce))
		written, err := data.Install(dst, installForce)
		finishSpan(s, err)
		if err != nil {
			return err
		}

		// Remember an explicit install location for later runs.
		if installDir != "" {
			configPath := viper.ConfigFileUsed()
			if configPath == "" {
				configPath = ".gomkm/config.yaml"
			}
			if err := config.SaveDataDir(configPath, dst); err != nil {
				return fmt.Errorf("saving data_dir: %w", err)
			}
		}

		fmt.Fprintln(os.Stdout, successStyle.Render(
			fmt.Sprintf("installed %d files into %s", written, dst)))
		return nil
	},
}

func init() {
	dataInstallCmd.Flags().BoolVar(&installForce, "force", false,
		"overwrite files that already exist in the installed tree")
	dataInstallCmd.Flags().StringVar(&installDir, "dir", "",
		"install into this directory instead of the default location")
	rootCmd.AddCommand(dataInstallCmd)
}
