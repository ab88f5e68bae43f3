// Package cli implements the quadinfo command-line tool, a developer
// aid for inspecting the quadrature rule catalogue: which
// element/matrix pairs are supported, how many integration points each
// pair uses, and the exact coordinates and weights of any rule.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	logger *log.Logger
	out    io.Writer
}

// New creates a CLI writing command output to out and logs to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		logger: log.NewWithOptions(errOut, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		out: out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "quadinfo",
		Short:        "quadinfo inspects the reference-element quadrature catalogue",
		Long:         `quadinfo lists the supported (element type, matrix type) integration configurations and dumps the exact integration point coordinates and weights of any rule in the catalogue.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())

	return root
}
