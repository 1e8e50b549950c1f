package cli

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/phanxgames/mondrian"
)

func newExportCmd() *cobra.Command {
	var (
		configPath string
		output     string
		randomized bool
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a composition frame to a PNG file",
		Long:  `Export renders the composition's original layout (or, with --randomized, a freshly scattered one) to a PNG file through a CPU rasterizer. No display is needed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := resolveConfig(configPath)
			if err != nil {
				return err
			}

			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewPCG(seed, seed))
			}
			comp := mondrian.New(cfg, rng)
			if randomized {
				comp.Randomize(0)
			}

			if err := mondrian.ExportPNG(output, comp.Frame(0), comp.Config()); err != nil {
				return err
			}
			logger.Info("exported", "path", output, "mode", comp.Mode())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML composition file (default: built-in classic)")
	cmd.Flags().StringVarP(&output, "output", "o", "composition.png", "output PNG path")
	cmd.Flags().BoolVar(&randomized, "randomized", false, "export a randomized arrangement instead of the original")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for --randomized (0 means non-deterministic)")
	return cmd
}
