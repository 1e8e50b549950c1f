package cli

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/mondrian"
)

func newPlayCmd() *cobra.Command {
	var (
		configPath string
		fps        int
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "play <script.json>",
		Short: "Run a JSON playback script headlessly",
		Long: `Play drives the composition with a scripted sequence of press, release,
wait, and export steps against a virtual clock. Useful for generating
deterministic frame captures without a display.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := resolveConfig(configPath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			script, err := mondrian.LoadScript(data)
			if err != nil {
				return err
			}

			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewPCG(seed, seed))
			}
			comp := mondrian.New(cfg, rng)

			logger.Debug("playing script", "path", args[0], "fps", fps)
			if err := mondrian.Play(comp, script, fps); err != nil {
				return err
			}
			logger.Info("script finished", "mode", comp.Mode())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML composition file (default: built-in classic)")
	cmd.Flags().IntVar(&fps, "fps", 60, "virtual clock frame rate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 means non-deterministic)")
	return cmd
}
