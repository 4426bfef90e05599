package cli

import (
	"fmt"
	"strings"

	"github.com/pyboot-labs/pyboot/internal/config"
	"github.com/pyboot-labs/pyboot/internal/scaffold"
	"github.com/pyboot-labs/pyboot/internal/schema"
	"github.com/pyboot-labs/pyboot/internal/ui"
	"github.com/spf13/cobra"
)

func newNewCmd() *cobra.Command {
	var template, outputDir string

	cmd := &cobra.Command{
		Use:   "new [project name]",
		Short: "Bootstrap a new Python project",
		Long: `Create a Python project tree from a built-in template.

The project name is turned into a folder name by lowercasing it and replacing
spaces with underscores. The tree is written to <output-dir>/<slug>; running
the command again with the same name overwrites the generated files.

Examples:
  pyboot new "My Project"
  pyboot new weather-bot --template basic --output-dir ~/code`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := ui.New(cmd.OutOrStdout())

			setName := template
			if setName == "" {
				setName = config.Template()
			}
			set, err := scaffold.Lookup(setName)
			if err != nil {
				return err
			}

			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				name, err = newPrompter(cmd).Input("Enter your project name")
				if err != nil {
					return err
				}
			}

			base := outputDir
			if base == "" {
				base = config.ProjectsDir()
			}
			if base == "" {
				base = "."
			}

			data := scaffold.NewScaffoldData(name)
			result, err := scaffold.Generate(set, data, base)
			if err != nil {
				return fmt.Errorf("creating project: %w", err)
			}

			printResult(c, set, name, result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&template, "template", "t", "", "Template to use (default from config, \"api\")")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory to create the project in (default: projects_dir config or current directory)")
	return cmd
}

func printResult(c *ui.Console, set *scaffold.Set, name string, result *scaffold.Result) {
	label := "Project"
	if set.Name == "basic" {
		label = "Basic project"
	}
	c.Success("%s '%s' created successfully at '%s'!", label, name, result.OutputDir)
	for _, f := range result.Files {
		c.Dim("  %s", f)
	}
	if len(result.Checks) > 0 {
		c.Println("\nChecks:")
		for _, chk := range result.Checks {
			if chk.Validation == nil {
				c.Status("FAIL", "%s: not validated", chk.Path)
				continue
			}
			tag := " OK "
			if !chk.Validation.Valid {
				tag = "WARN"
			}
			c.Status(tag, "%s: %s", chk.Path, schema.Summary(chk.Validation))
		}
	}
	if len(result.Warnings) > 0 {
		c.Println("\nWarnings:")
		for _, w := range result.Warnings {
			c.Warn("  - %s", w)
		}
	}
}

func newTemplatesCmd() *cobra.Command {
	var showFiles bool

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the built-in project templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := ui.New(cmd.OutOrStdout())
			for _, s := range scaffold.Sets() {
				c.Printf("%-6s %s\n", s.Name, s.Description)
				if !showFiles {
					continue
				}
				for _, f := range s.Files {
					c.Dim("         %s", f.Path)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showFiles, "files", "f", false, "Also list the files each template writes")
	return cmd
}
