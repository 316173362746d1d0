// Package cli implements the seamcarver command-line interface.
//
// The commands are:
//   - carve:  shrink an image, a directory of images, a URL or a pipe
//   - seam:   print the lowest energy seam of an image, optionally drawn over it
//   - energy: render the energy map of an image
//
// Every command accepts --verbose (-v) for debug logging and --config to read
// the defaults from a TOML file. The logger is passed to the commands through
// the command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const helpBanner = `
┌─┐┌─┐┌─┐┌┬┐  ┌─┐┌─┐┬─┐┬  ┬┌─┐┬─┐
└─┐├┤ ├─┤│││  │  ├─┤├┬┘└┐┌┘├┤ ├┬┘
└─┘└─┘┴ ┴┴ ┴  └─┘┴ ┴┴└─ └┘ └─┘┴└─

Content aware image resize tool.`

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the seamcarver CLI with the process arguments.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Logs are written to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "seamcarver",
		Short:        "Content aware image resizing",
		Long:         helpBanner,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("seamcarver %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().String("config", "", "TOML file with default options")

	root.AddCommand(newCarveCmd())
	root.AddCommand(newSeamCmd())
	root.AddCommand(newEnergyCmd())

	return root
}
