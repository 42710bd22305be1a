// Package cli implements the graphstream command-line interface.
//
// Every command builds a scene through pkg/pipeline from a TOML file (see
// pkg/config) with optional flag overrides, then either reports on it,
// drives it headlessly, or hands it to an interactive terminal viewer.
//
// # Commands
//
//   - generate: build a scene and print per-generator statistics
//   - simulate: stream a scene along a scripted camera path
//   - view: explore a scene in the terminal
//   - config: print the effective configuration as TOML
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// held by [CLI] and passed explicitly to the pipeline.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphstream/pkg/buildinfo"
	"github.com/matzehuels/graphstream/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "graphstream"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
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
		Short:        "Graphstream streams huge procedural graphs through a moving viewport",
		Long:         `Graphstream generates large spatial graphs, buckets them into chunks and streams only the part near the camera into a rendering surface, evicting what drifts out of range.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.simulateCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
