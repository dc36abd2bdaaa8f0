package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/doeshing/n8n-ready/internal/app"
	"github.com/doeshing/n8n-ready/internal/domain"
	"github.com/doeshing/n8n-ready/internal/infrastructure/cli/ui"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(container *app.Container) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check system requirements and configuration",
		Long: `Check that Docker and Docker Compose are usable.

With --path, also check the ports the project's profile needs and, when the
project has a .env file, whether N8N_HOST resolves to this server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctorDiagnostics(cmd, container, projectPath)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Path to n8n-ready project directory for additional checks")
	return cmd
}

// runDoctorDiagnostics runs environment diagnostics
func runDoctorDiagnostics(cmd *cobra.Command, container *app.Container, projectPath string) error {
	if container.DoctorService == nil {
		return errors.New(ErrDoctorServiceUnavailable)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, MsgRunningChecks)

	report := container.DoctorService.Run(cmd.Context(), projectPath)

	// Display report even if there were errors
	ui.NewRenderer(out).DoctorReport(report)

	if report.Verdict() == domain.VerdictFailed {
		return ErrDiagnosticsFailed
	}
	return nil
}
