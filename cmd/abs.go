package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/selfpath/cli"
	"github.com/grovetools/selfpath/errors"
	"github.com/grovetools/selfpath/pkg/abspath"
	"github.com/grovetools/selfpath/pkg/pathbuf"
	"github.com/grovetools/selfpath/pkg/profiling"
	"github.com/grovetools/selfpath/theme"
)

// AbsolutePathOutput is one entry of the abs command's JSON output. Path is
// null when the input could not be resolved.
type AbsolutePathOutput struct {
	Input string           `json:"input"`
	Path  pathbuf.Optional `json:"path"`
	Error string           `json:"error,omitempty"`
	Code  string           `json:"code,omitempty"`
}

func newAbsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abs [path...]",
		Short: "Print the canonical absolute form of each path",
		Long: `Print the canonical absolute form of each path.

With no arguments the working directory is printed. On Unix systems symlinks
are resolved and every path must exist; on Windows the path is normalized
without touching the filesystem.

Examples:
  selfpath abs
  selfpath abs ../bin ./config --json
  selfpath abs missing/file --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cli.Config(cmd)
			strict := cfg.Strict
			if cmd.Flags().Changed("strict") {
				strict, _ = cmd.Flags().GetBool("strict")
			}
			if len(args) == 0 {
				args = []string{"."}
			}

			logger := cli.GetLogger(cmd)
			asJSON := cli.WantsJSON(cmd, cfg)
			t := theme.DefaultTheme

			results := make([]AbsolutePathOutput, 0, len(args))
			var failures []error
			for _, arg := range args {
				span := profiling.Start("abs " + arg)
				abs, err := abspath.Resolve(arg)
				span.Stop()

				if err != nil {
					logger.WithError(err).WithField("path", arg).Debug("Path could not be resolved")
					if strict {
						return err
					}
					failures = append(failures, err)
					results = append(results, AbsolutePathOutput{
						Input: arg,
						Path:  pathbuf.None(),
						Error: err.Error(),
						Code:  string(errors.GetCode(err)),
					})
					if !asJSON {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", t.Error.Render("✗"), err)
					}
					continue
				}

				results = append(results, AbsolutePathOutput{Input: arg, Path: pathbuf.Some(abs)})
				if !asJSON {
					fmt.Fprintln(cmd.OutOrStdout(), abs)
				}
			}

			if asJSON {
				if err := printJSON(cmd, results); err != nil {
					return err
				}
			}
			return unresolvedError(failures, len(args))
		},
	}

	cmd.Flags().Bool("strict", false, "Stop at the first path that cannot be resolved")
	return cmd
}

// unresolvedError summarizes failed resolutions. A single failure is returned
// as is so its code reaches the error handler.
func unresolvedError(failures []error, total int) error {
	switch len(failures) {
	case 0:
		return nil
	case 1:
		return failures[0]
	}
	return errors.New(errors.ErrCodeAbsoluteResolutionFailed,
		fmt.Sprintf("%d of %d paths could not be resolved", len(failures), total)).
		WithDetail("failed", len(failures))
}
