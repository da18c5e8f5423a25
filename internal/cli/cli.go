// Package cli implements the xform command-line interface.
//
// The commands read a transform list from a YAML, JSON or TOML file, compose
// it into an affine matrix and optionally decompose the matrix again. Lists
// may reference variables, which are either bound on the command line or kept
// symbolic and printed as expressions.
//
// # Commands
//
//   - compose: print the composed matrix
//   - decompose: print the components recovered from the composed matrix
//   - eval: sample the components while sweeping one variable, e.g. per animation frame
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// also installed as the slog handler, so library packages log through it.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "xform"

// Version is set via ldflags: -X github.com/oliverbestmann/xform/internal/cli.Version=...
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out    io.Writer
	styles styles

	// profiles are written here, see --profile
	profileDir  string
	stopProfile func()
}

// New creates a new CLI writing results to out and log messages to logOut.
func New(out, logOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(logOut, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
			Prefix:          appName,
		}),
		out:        out,
		styles:     newStyles(lipgloss.NewRenderer(out)),
		profileDir: ".",
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var profileMode string

	root := &cobra.Command{
		Use:           appName,
		Short:         "xform composes and decomposes 2d affine transforms",
		Long:          `xform composes a list of 2d transforms (translate, scale, skew, rotate) into a single affine matrix and decomposes affine matrices back into translation, rotation, scale and skew.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			stop, err := startProfile(profileMode, c.profileDir)
			if err != nil {
				return err
			}

			c.stopProfile = stop
			return nil
		},
	}

	root.SetOut(c.out)
	root.PersistentFlags().StringVar(&profileMode, "profile", "", "write a profile of the run: cpu, mem")

	root.AddCommand(c.composeCommand())
	root.AddCommand(c.decomposeCommand())
	root.AddCommand(c.evalCommand())

	return root
}

// Execute runs root and stops a profile started by --profile, even if the
// command failed.
func (c *CLI) Execute(ctx context.Context, root *cobra.Command) error {
	defer func() {
		if c.stopProfile != nil {
			c.stopProfile()
			c.stopProfile = nil
		}
	}()

	return root.ExecuteContext(ctx)
}
