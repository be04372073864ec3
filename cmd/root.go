package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/selfpath/cli"
	"github.com/grovetools/selfpath/pkg/profiling"
	"github.com/grovetools/selfpath/version"
)

// NewRootCmd builds the selfpath command tree.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand(
		"selfpath",
		"Locate the running executable and canonicalize paths",
	)
	root.Long = `Locate the running executable and canonicalize paths.

selfpath reports the path of its own executable the way an application would
when it needs to find resources shipped next to it, and resolves relative
paths against the working directory.

Examples:
  # Print the executable path
  selfpath exe

  # Show what happens with a buffer that is too small
  selfpath exe --buffer-size 8

  # Canonicalize several paths as JSON
  selfpath abs . .. /tmp --json`

	hooks := profiling.NewHooks(cli.GetLogger)
	hooks.AddFlags(root)

	loadConfig := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd, args); err != nil {
			return err
		}
		return hooks.PreRun(cmd, args)
	}
	root.PersistentPostRun = hooks.PostRun

	cli.SetVersionTemplate(root, version.GetInfo())

	root.AddCommand(newExeCmd())
	root.AddCommand(newDirCmd())
	root.AddCommand(newAbsCmd())
	root.AddCommand(newRootsCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(cli.NewVersionCommand("selfpath"))

	return root
}
