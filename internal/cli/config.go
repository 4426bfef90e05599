package cli

import (
	"fmt"

	"github.com/pyboot-labs/pyboot/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write settings stored at ~/.pyboot/config.yaml.

Keys:
  python        interpreter used to build environments
  envs_dir      folder name searched for by the env commands (default "envs")
  template      default template for "new" (default "api")
  projects_dir  base directory for new projects (default: current directory)

Every key can also be set with a PYBOOT_<KEY> environment variable.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
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
			if !config.IsKnownKey(args[0]) {
				return fmt.Errorf("unknown config key %q (known keys: %v)", args[0], config.Keys())
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", config.FilePath())
			for _, key := range config.Keys() {
				fmt.Fprintf(out, "%s = %s\n", key, config.Get(key))
			}
			return nil
		},
	})

	return cmd
}
