package cli

import (
	"os"

	"github.com/pyboot-labs/pyboot/internal/branding"
	"github.com/pyboot-labs/pyboot/internal/config"
	"github.com/pyboot-labs/pyboot/internal/doctor"
	"github.com/pyboot-labs/pyboot/internal/ui"
	"github.com/spf13/cobra"
)

var newChecker = func() *doctor.Checker { return &doctor.Checker{} }

func newDoctorCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the Python interpreter and envs folder",
		Long:  `Run diagnostic checks: the configured interpreter can build environments, and an envs folder is reachable from the current directory.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := from
			if start == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				start = wd
			}

			c := ui.New(cmd.OutOrStdout())
			c.Heading(branding.CLIName() + " doctor")

			results := newChecker().Run(cmd.Context(), doctor.Options{
				Python:     config.Python(),
				Start:      start,
				EnvsDir:    config.EnvsDir(),
				ConfigFile: config.FilePath(),
			})
			if problems := doctor.Print(c, results); problems > 0 {
				c.Printf("\n%d of %d checks need attention.\n", problems, len(results))
				return nil
			}
			c.Success("\nAll checks passed.")
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Directory to start the envs search from (default: current directory)")
	return cmd
}
