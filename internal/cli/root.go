package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/pyboot-labs/pyboot/internal/activation"
	"github.com/pyboot-labs/pyboot/internal/branding"
	"github.com/pyboot-labs/pyboot/internal/config"
	"github.com/pyboot-labs/pyboot/internal/envs"
	"github.com/pyboot-labs/pyboot/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Hooks replaced in tests.
var (
	hostFamily = activation.FamilyFor(runtime.GOOS)

	newBuilder = func(python string, stdout, stderr io.Writer) envs.Builder {
		return &envs.VenvBuilder{Python: python, Stdout: stdout, Stderr: stderr}
	}

	newPrompter = func(cmd *cobra.Command) prompt.Prompter {
		if f, ok := cmd.InOrStdin().(*os.File); ok {
			return prompt.New(f, cmd.OutOrStdout())
		}
		return prompt.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	}
)

// newRootCmd builds the full command tree. A fresh tree per call keeps flag
// state from leaking between executions.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` finds the folder holding your Python virtual environments,
creates and lists environments inside it, prints activation instructions,
and bootstraps new Python project trees from built-in templates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), verbose)
			config.Load()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs to stderr")

	root.AddCommand(
		newEnvCmd(),
		newNewCmd(),
		newTemplatesCmd(),
		newDoctorCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}
