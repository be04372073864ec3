package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/selfpath/cli"
	"github.com/grovetools/selfpath/errors"
	"github.com/grovetools/selfpath/pkg/exepath"
	"github.com/grovetools/selfpath/pkg/pathbuf"
	"github.com/grovetools/selfpath/pkg/profiling"
)

// ExecutablePathOutput is the JSON form of the exe and dir commands.
type ExecutablePathOutput struct {
	Path                 string `json:"path"`
	PathIncludesFilename bool   `json:"path_includes_filename"`
	BufferSize           int    `json:"buffer_size"`
}

type resolveFunc func(pathbuf.Buffer) exepath.Result

func newExeCmd() *cobra.Command {
	return newExecutablePathCmd(
		"exe",
		"Print the absolute path of the running executable",
		exepath.Resolve,
	)
}

func newDirCmd() *cobra.Command {
	return newExecutablePathCmd(
		"dir",
		"Print the directory containing the running executable",
		exepath.ResolveDirectory,
	)
}

func newExecutablePathCmd(use, short string, resolve resolveFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cli.Config(cmd)
			size := cfg.BufferSize
			if cmd.Flags().Changed("buffer-size") {
				size, _ = cmd.Flags().GetInt("buffer-size")
			}
			if size < 0 {
				return errors.InvalidInput(fmt.Sprintf("buffer size must not be negative, got %d", size))
			}

			buf := pathbuf.New(size)
			span := profiling.Start(use)
			res := resolve(buf)
			span.Stop()

			cli.GetLogger(cmd).WithFields(logrus.Fields{
				"status":        res.Status.String(),
				"buffer_size":   size,
				"includes_name": res.PathIncludesFilename,
			}).Debug("Executable path query finished")

			switch res.Status {
			case exepath.Success:
			case exepath.BufferTooSmall:
				spErr := errors.BufferTooSmall(size)
				spErr.Cause = res.Err
				return spErr
			default:
				return errors.General("executable path query", res.Err)
			}

			if cli.WantsJSON(cmd, cfg) {
				return printJSON(cmd, ExecutablePathOutput{
					Path:                 buf.String(),
					PathIncludesFilename: res.PathIncludesFilename,
					BufferSize:           size,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), buf.String())
			return nil
		},
	}

	cmd.Flags().Int("buffer-size", 0, "Buffer capacity in bytes (defaults to buffer_size from config)")
	return cmd
}
