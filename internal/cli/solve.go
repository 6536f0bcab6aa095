package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/questgrid/input"
	"github.com/katalvlaran/questgrid/maze"
)

// errNoSource indicates neither --file nor a complete key was given.
var errNoSource = errors.New("either --file or --event, --quest and --part is required")

// solveOpts holds the flags of the solve command.
type solveOpts struct {
	file   string
	inputs string
	rules  string
	key    input.Key
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the shortest distance from the nearest start to the goal",
		Example: `  questgrid solve --file map.txt
  questgrid solve --event 2024 --quest 13 --part 3 --rules level.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "map file to read")
	cmd.Flags().StringVar(&opts.inputs, "inputs", input.Root(), "inputs directory for --event/--quest/--part")
	cmd.Flags().StringVarP(&opts.rules, "rules", "r", "", "maze rules TOML file (default: plain S/E maze)")
	cmd.Flags().IntVar(&opts.key.Event, "event", 0, "event number")
	cmd.Flags().IntVar(&opts.key.Quest, "quest", 0, "quest number")
	cmd.Flags().IntVar(&opts.key.Part, "part", 0, "part number")
	cmd.MarkFlagsMutuallyExclusive("file", "event")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, opts solveOpts) error {
	logger := c.Logger

	rules := maze.DefaultRules()
	if opts.rules != "" {
		var err error
		if rules, err = maze.LoadRules(opts.rules); err != nil {
			return err
		}
		logger.Debug("loaded rules", "path", opts.rules, "cost", rules.Cost, "connectivity", rules.Connectivity)
	}

	text, err := c.readMap(opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err = ctx.Err(); err != nil {
		return err
	}
	prog := newProgress(logger)
	res, err := maze.Solve(text, rules)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	prog.done("solved", "nodes", res.Nodes, "edges", res.Edges, "starts", len(res.Starts))
	logger.Debug("goal", "at", res.Goal.String(), "reachable", res.Reachable)

	out := cmd.OutOrStdout()
	if !res.Reachable {
		_, err = fmt.Fprintln(out, "unreachable")
		return err
	}
	_, err = fmt.Fprintln(out, res.Distance)

	return err
}

// readMap loads the map text from --file or from the inputs directory.
func (c *CLI) readMap(opts solveOpts) (string, error) {
	if opts.file != "" {
		c.Logger.Debug("reading map", "file", opts.file)
		return input.ReadFile(opts.file)
	}
	if opts.key == (input.Key{}) {
		return "", errNoSource
	}
	c.Logger.Debug("reading input", "key", opts.key.String(), "root", opts.inputs)

	return input.Load(opts.inputs, opts.key)
}
