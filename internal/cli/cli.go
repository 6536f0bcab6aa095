// Package cli implements the questgrid command-line interface.
//
// The CLI is built with cobra and logs through charmbracelet/log. The
// solve command loads a map (from a file or by event/quest/part key),
// applies maze rules from an optional TOML file and prints the shortest
// distance from the nearest start to the goal.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the application name used for display.
const appName = "questgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Shortest paths through puzzle maps",
		Long:         `questgrid reads a character map, turns it into a weighted graph under configurable rules and reports the shortest distance from the nearest start to the goal.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.rulesCommand())

	return root
}
