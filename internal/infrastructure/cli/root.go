package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/n8n-ready/internal/app"
	"github.com/doeshing/n8n-ready/internal/infrastructure/cli/commands"
	"github.com/doeshing/n8n-ready/internal/version"
)

// ErrDiagnosticsFailed is returned when doctor reported at least one error.
var ErrDiagnosticsFailed = commands.ErrDiagnosticsFailed

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The container is built once the
// flags are parsed, so --verbose reaches the logger.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container := &app.Container{}
	verbose := opts.Verbose

	root := &cobra.Command{
		Use:     "n8n-ready",
		Short:   "Readiness checks and lifecycle commands for n8n deployments",
		Long:    "n8n-ready scaffolds n8n projects, checks that a host is ready to run them, and starts or stops them with Docker Compose.",
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsContainer(cmd) {
				return nil
			}
			built, err := app.BuildContainer(cmd.Context(), verbose)
			if err != nil {
				return err
			}
			*container = *built
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if container.Logger != nil {
				_ = container.Logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetContext(ctx)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", verbose, "Enable debug logging on stderr")

	root.AddCommand(commands.NewInitCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewUpCommand(container))
	root.AddCommand(commands.NewDownCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}

func skipsContainer(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return false
}
