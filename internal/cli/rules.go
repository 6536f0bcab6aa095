package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/questgrid/maze"
)

// rulesCommand prints a rules file, either the defaults or a loaded file
// after defaults are applied, so users can start from a complete template.
func (c *CLI) rulesCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print effective maze rules as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := maze.DefaultRules()
			if path != "" {
				var err error
				if rules, err = maze.LoadRules(path); err != nil {
					return err
				}
			}
			c.Logger.Debug("printing rules", "path", path)

			return toml.NewEncoder(cmd.OutOrStdout()).Encode(rules)
		},
	}

	cmd.Flags().StringVarP(&path, "rules", "r", "", "rules TOML file to merge over the defaults")

	return cmd
}
