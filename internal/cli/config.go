package cli

import (
	"fmt"

	"github.com/boilr-labs/boilr/internal/branding"
	"github.com/boilr-labs/boilr/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persisted defaults",
		Long: fmt.Sprintf(`Read and write defaults stored at %s.

Keys:
  project_name   folder name used when --name is not given
  destination    directory used when --dest is not given

Environment variables (%s, %s) override the file.`,
			config.FilePath(), branding.EnvVar(config.KeyProjectName), branding.EnvVar(config.KeyDestination)),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if key == config.KeyProjectName {
				if err := config.ValidateProjectName(value); err != nil {
					return err
				}
			}
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, key := range config.Keys() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
			}
			return nil
		},
	})

	return cmd
}
