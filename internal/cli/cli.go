// Package cli implements the xqboard command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/xqboard/pkg/buildinfo"
	"github.com/matzehuels/xqboard/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "xqboard"

	// defaultAddr is where the preview server listens.
	defaultAddr = "127.0.0.1:8080"
)

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
	Out    io.Writer // status lines; logs go to the logger's writer

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "xqboard builds the Xiangqi board asset and its stylesheet",
		Long: `xqboard draws a plain Xiangqi board as SVG and inlines it into a stylesheet
as a data URI, replacing the "SVG-REPLACE <path>" sentinel in a template.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default: ./"+config.DefaultFile+" if present)")

	// Register all subcommands
	root.AddCommand(c.boardCommand())
	root.AddCommand(c.embedCommand())
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and attaches the logger to the command
// context before any subcommand runs.
func (c *CLI) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, used, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if used != "" {
		c.Logger.Debug("loaded config", "path", used)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}
