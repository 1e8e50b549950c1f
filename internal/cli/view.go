package cli

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/mondrian"
)

func newViewCmd() *cobra.Command {
	var (
		configPath string
		title      string
		showFPS    bool
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the composition in an interactive window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := resolveConfig(configPath)
			if err != nil {
				return err
			}

			comp := mondrian.New(cfg, nil)
			logger.Debug("opening window", "width", cfg.Width, "height", cfg.Height)
			return mondrian.Run(comp, mondrian.RunConfig{
				Title:   title,
				ShowFPS: showFPS,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML composition file (default: built-in classic)")
	cmd.Flags().StringVarP(&title, "title", "t", "Composition", "window title")
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show an FPS overlay")
	return cmd
}
