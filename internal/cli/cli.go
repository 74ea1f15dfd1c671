// Package cli implements the nebula command-line interface.
//
// The CLI has two commands: view opens a window showing a word list as a
// rotating 3D nebula, and layout prints the computed sphere layout as a
// table or JSON without opening a window. Both read the analysis format
// accepted by [nebula.DecodeWords].
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the application name used for display.
const appName = "nebula"

// Execute runs the nebula CLI with the process arguments. Cancelling ctx
// closes the viewer window.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the root command with all subcommands registered.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Nebula shows article keywords as a rotating 3D word cloud",
		Long:         `Nebula renders weighted keywords on a slowly rotating sphere: heavier words are larger and warmer, and hovering a word highlights it.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newViewCmd())
	root.AddCommand(newLayoutCmd())
	return root
}
