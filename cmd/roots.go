package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/selfpath/cli"
	"github.com/grovetools/selfpath/pkg/pathbuf"
	"github.com/grovetools/selfpath/pkg/roots"
	"github.com/grovetools/selfpath/theme"
)

// RootsOutput is the JSON form of the roots command. Absent roots are null.
type RootsOutput struct {
	DefaultAppRoot  pathbuf.Optional `json:"default_app_root"`
	DevWriteStorage pathbuf.Optional `json:"dev_write_storage"`
}

func newRootsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roots",
		Short: "Print the configured application root and developer write storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRoots(cmd, roots.Platform())
		},
	}
}

func printRoots(cmd *cobra.Command, provider roots.Provider) error {
	out := RootsOutput{
		DefaultAppRoot:  provider.DefaultAppRootPath(),
		DevWriteStorage: provider.DevWriteStoragePath(),
	}
	if cli.WantsJSON(cmd, cli.Config(cmd)) {
		return printJSON(cmd, out)
	}

	t := theme.DefaultTheme
	render := func(o pathbuf.Optional) string {
		if p, ok := o.Get(); ok {
			return p
		}
		return t.Muted.Render("not configured")
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s  %s\n", t.Accent.Render("default app root: "), render(out.DefaultAppRoot))
	fmt.Fprintf(w, "%s  %s\n", t.Accent.Render("dev write storage:"), render(out.DevWriteStorage))
	return nil
}
