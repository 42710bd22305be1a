package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphstream/pkg/config"
)

// configCommand creates the config command, which prints the effective
// configuration so it can be saved and edited.
func (c *CLI) configCommand() *cobra.Command {
	var flags sceneFlags

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective scene configuration as TOML",
		Long: `Config resolves the config file and flag overrides exactly like the other
commands and prints the result.

Example:
  graphstream config --kind spiral --children 4 > scene.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}

	flags.register(cmd)
	return cmd
}
