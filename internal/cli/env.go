package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pyboot-labs/pyboot/internal/activation"
	"github.com/pyboot-labs/pyboot/internal/config"
	"github.com/pyboot-labs/pyboot/internal/envs"
	"github.com/pyboot-labs/pyboot/internal/prompt"
	"github.com/pyboot-labs/pyboot/internal/ui"
	"github.com/spf13/cobra"
)

func newEnvCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Find, list, create, and activate virtual environments",
		Long: `Work with the virtual environments kept in an "envs" folder.

The folder is found by walking upward from the current directory (or --from)
until a directory containing it is reached. The folder name can be changed
with the envs_dir config key.`,
	}
	cmd.PersistentFlags().StringVar(&from, "from", "", "Directory to start searching from (default: current directory)")

	cmd.AddCommand(
		newEnvListCmd(&from),
		newEnvCreateCmd(&from),
		newEnvActivateCmd(&from),
	)
	return cmd
}

// locateRoot searches for the envs folder and reports a miss on c. The
// boolean is false when the command should stop.
func locateRoot(c *ui.Console, from string) (string, bool, error) {
	start := from
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", false, fmt.Errorf("getting current directory: %w", err)
		}
		start = wd
	}

	dirName := config.EnvsDir()
	root, ok := envs.FindRoot(start, dirName)
	if !ok {
		c.Warn("No '%s' folder found in the current or parent directories.", dirName)
		return "", false, nil
	}
	c.Printf("'%s' folder found at: %s\n", dirName, c.Path(root))
	return root, true, nil
}

func newEnvListCmd(from *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List virtual environments in the envs folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := ui.New(cmd.OutOrStdout())
			root, ok, err := locateRoot(c, *from)
			if err != nil || !ok {
				return err
			}

			names, err := envs.List(root)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				c.Println("No virtual environments found in the '" + config.EnvsDir() + "' folder.")
				return nil
			}

			c.Println("\nAvailable Virtual Environments:")
			for _, n := range names {
				c.Printf("  %s\n", n)
			}
			return nil
		},
	}
}

func newEnvCreateCmd(from *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a virtual environment in the envs folder",
		Long: `Create a virtual environment inside the envs folder with "<python> -m venv".

If the environment already exists nothing is built and its activation
instructions are shown. The interpreter comes from the python config key.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := ui.New(cmd.OutOrStdout())
			c.Heading("Virtual Environment Manager")

			root, ok, err := locateRoot(c, *from)
			if err != nil || !ok {
				return err
			}

			p := newPrompter(cmd)
			name := ""
			if len(args) == 1 {
				name = strings.TrimSpace(args[0])
			} else if name, err = p.Input("Enter the name of the virtual environment"); err != nil {
				return err
			}
			if err := envs.ValidateName(name); err != nil {
				c.Error("%v", err)
				return nil
			}

			var confirm envs.ConfirmFunc
			if !yes {
				confirm = func(string) (bool, error) {
					return p.Confirm(fmt.Sprintf("The virtual environment '%s' does not exist. Do you want to create it?", name))
				}
			}

			python := config.Python()
			builder := newBuilder(python, cmd.OutOrStdout(), cmd.ErrOrStderr())
			outcome, path, err := envs.Ensure(cmd.Context(), builder, root, name, confirm)

			var buildErr *envs.BuildError
			if errors.As(err, &buildErr) {
				c.Error("Failed to create virtual environment: %v", buildErr.Err)
				return nil
			}
			if err != nil {
				return err
			}

			inst := activation.For(path, hostFamily)
			switch outcome {
			case envs.OutcomeExisting:
				c.Printf("The virtual environment '%s' already exists at '%s'.\n", name, path)
				return activation.WriteBrief(c.Writer(), inst)
			case envs.OutcomeCreated:
				c.Success("Virtual environment created successfully at: %s", path)
				return activation.WriteBrief(c.Writer(), inst)
			default:
				c.Println("You chose not to create the environment. To create it yourself, use the following command:")
				c.Println(activation.ManualCommand(python, path))
				return nil
			}
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Create without asking for confirmation")
	return cmd
}

func newEnvActivateCmd(from *string) *cobra.Command {
	return &cobra.Command{
		Use:   "activate [name]",
		Short: "Show how to activate a virtual environment",
		Long: `Show activation commands and editor setup for an environment in the envs
folder. Without a name, the available environments are listed and one is
picked by number.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := ui.New(cmd.OutOrStdout())
			c.Heading("Python Virtual Environment Activator")

			root, ok, err := locateRoot(c, *from)
			if err != nil || !ok {
				return err
			}

			names, err := envs.List(root)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				c.Println("No virtual environments found in the '" + config.EnvsDir() + "' folder.")
				return nil
			}

			var selected string
			if len(args) == 1 {
				selected = strings.TrimSpace(args[0])
				if !slices.Contains(names, selected) {
					c.Error("No virtual environment named '%s' in %s.", selected, root)
					return nil
				}
			} else {
				c.Println("\nAvailable Virtual Environments:")
				idx, err := newPrompter(cmd).Choose("Enter the number of the environment to activate", names)
				switch {
				case errors.Is(err, prompt.ErrInvalidInput):
					c.Error("Invalid input. Exiting.")
					return nil
				case errors.Is(err, prompt.ErrInvalidChoice):
					c.Error("Invalid choice. Exiting.")
					return nil
				case err != nil:
					return err
				}
				selected = names[idx]
			}

			inst := activation.For(filepath.Join(root, selected), hostFamily)
			return activation.WriteDetailed(c.Writer(), inst)
		},
	}
}
