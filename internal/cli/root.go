// Package cli implements the mondrian command-line interface.
//
// The CLI wraps the composition engine in three commands:
//   - view: open an interactive window (press to scatter, release to settle)
//   - export: render a composition frame to a PNG file, no display needed
//   - play: run a JSON playback script headlessly
//
// All commands accept --config to load a custom composition from a TOML
// file and --verbose (-v) for debug-level logging. Loggers are passed
// through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/mondrian"
)

// Execute runs the mondrian CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "mondrian",
		Short:        "Interactive grid compositions in the De Stijl manner",
		Long:         `Mondrian renders an interactive composition of colored rectangles separated by a black grid. Press to scatter the grid into a random arrangement; release and the lines ease back into place.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newViewCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newPlayCmd())

	return root.ExecuteContext(context.Background())
}

// resolveConfig loads the TOML composition at path, or the built-in classic
// composition when path is empty.
func resolveConfig(path string) (mondrian.Config, error) {
	if path == "" {
		return mondrian.Classic(), nil
	}
	return loadConfig(path)
}
