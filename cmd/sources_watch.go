package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/BeppeMagro/gomkm/internal/log"
	"github.com/BeppeMagro/gomkm/internal/registry"
	"github.com/BeppeMagro/gomkm/internal/watcher"
)

var watchDebounce time.Duration

var sourcesWatchCmd = &cobra.Command{
	Use:   "sources:watch",
	Short: "Re-validate the default sources whenever the data tree changes",
	Long: `Watch the resolved defaults tree and re-run source validation on every
change. Intended for data authoring: keep it running while editing .txt
headers and see validation pass or fail immediately.

Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := newRegistry()
		root, err := reg.DefaultsRoot()
		if err != nil {
			return err
		}

		w, err := watcher.New(watcher.Config{Root: root, DebounceDur: watchDebounce})
		if err != nil {
			return err
		}
		defer func() { _ = w.Stop() }()

		onChange, err := w.Start()
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, subtleStyle.Render("watching "+root))
		reportValidation(reg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		for {
			select {
			case <-onChange:
				log.Debug(log.CatWatch, "data tree changed", "root", root)
				reportValidation(reg)
			case <-ctx.Done():
				return nil
			}
		}
	},
}

// reportValidation runs one enumeration pass and prints a styled status line.
func reportValidation(reg *registry.Registry) {
	_, s := span(context.Background(), "registry.AvailableSources")
	sources, err := reg.AvailableSources()
	finishSpan(s, err)

	if err != nil {
		fmt.Fprintln(os.Stdout, errorStyle.Render(err.Error()))
		return
	}
	fmt.Fprintln(os.Stdout, successStyle.Render(
		fmt.Sprintf("%d valid sources: %s", len(sources), strings.Join(sources, ", "))))
}

func init() {
	sourcesWatchCmd.Flags().DurationVar(&watchDebounce, "debounce", time.Second,
		"coalesce window for change events")
	rootCmd.AddCommand(sourcesWatchCmd)
}
