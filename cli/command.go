package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/grovetools/selfpath/config"
	"github.com/grovetools/selfpath/errors"
	"github.com/grovetools/selfpath/theme"
)

// CommandOptions holds common options for selfpath commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
	NoColor    bool
}

// NewStandardCommand creates a new command with the standard selfpath flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts := GetOptions(cmd)
			if opts.NoColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			cfg, err := LoadConfig(cmd)
			if err != nil {
				return err
			}
			theme.Use(cfg.Theme)
			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, newCommandLogger(cmd, cfg))
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to selfpath.yml or selfpath.toml")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	SetStyledHelp(cmd)

	return cmd
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
		NoColor:    noColor,
	}
}

// LoadConfig loads the file named by --config, or searches for one from the
// working directory. A missing file is only an error when named explicitly;
// otherwise defaults are returned.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	opts := GetOptions(cmd)
	if opts.ConfigFile != "" {
		return config.Load(opts.ConfigFile)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}
	cfg, err := config.LoadFromWithLogger(cwd, bootstrapLogger(cmd))
	if errors.Is(err, errors.ErrCodeConfigNotFound) {
		cfg = &config.Config{}
		cfg.SetDefaults()
		return cfg, nil
	}
	return cfg, err
}

type configKey struct{}

// Config returns the configuration loaded for cmd by the standard pre-run
// hook, or defaults when the hook has not run.
func Config(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg
		}
	}
	cfg := &config.Config{}
	cfg.SetDefaults()
	return cfg
}

// WantsJSON reports whether output should be JSON, from --json or the config file.
func WantsJSON(cmd *cobra.Command, cfg *config.Config) bool {
	if GetOptions(cmd).JSONOutput {
		return true
	}
	return cfg != nil && cfg.Output == config.OutputJSON
}
