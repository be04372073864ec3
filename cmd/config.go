package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/selfpath/cli"
	"github.com/grovetools/selfpath/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the selfpath configuration",
	}
	cmd.AddCommand(newConfigSchemaCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of selfpath.yml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration after defaults are applied.

The file is taken from --config, or found by searching upward from the
working directory and then in the user configuration directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cli.Config(cmd)
			doc, err := effectiveConfig(cfg)
			if err != nil {
				return err
			}

			if cli.WantsJSON(cmd, cfg) {
				return printJSON(cmd, doc)
			}

			data, err := yaml.Marshal(doc)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# Source: %s\n%s", configSource(cmd), data)
			return nil
		},
	}
}

// effectiveConfig flattens cfg and its extension sections into one document
// keyed the way the file is written.
func effectiveConfig(cfg *config.Config) (map[string]interface{}, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	doc := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to flatten config: %w", err)
	}
	for key, value := range cfg.Extensions {
		doc[key] = value
	}
	return doc, nil
}

func configSource(cmd *cobra.Command) string {
	if path := cli.GetOptions(cmd).ConfigFile; path != "" {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "defaults"
	}
	path, err := config.FindConfigFile(cwd)
	if err != nil {
		return "defaults"
	}
	return path
}
