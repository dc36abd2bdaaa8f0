package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/doeshing/n8n-ready/internal/app"
	"github.com/doeshing/n8n-ready/internal/application/compose"
	"github.com/doeshing/n8n-ready/internal/domain"
	"github.com/doeshing/n8n-ready/internal/infrastructure/cli/ui"
)

// NewUpCommand creates the up command
func NewUpCommand(container *app.Container) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Start n8n services using Docker Compose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, container, domain.ActionUp, projectPath)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", DefaultProjectPath, "Project directory containing docker-compose.yml")
	return cmd
}

// NewDownCommand creates the down command
func NewDownCommand(container *app.Container) *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Stop n8n services using Docker Compose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, container, domain.ActionDown, projectPath)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", DefaultProjectPath, "Project directory containing docker-compose.yml")
	return cmd
}

func runCompose(cmd *cobra.Command, container *app.Container, action domain.ComposeAction, dir string) error {
	svc := container.ComposeService
	if svc == nil {
		return errors.New(ErrComposeServiceUnavailable)
	}
	if err := compose.RequireComposeFile(dir); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderer := ui.NewRenderer(out)

	label := MsgStartingServices
	run := svc.Up
	if action == domain.ActionDown {
		label = MsgStoppingServices
		run = svc.Down
	}
	fmt.Fprintln(out, label)
	fmt.Fprintln(out)

	spinner := ui.NewSpinner(cmd.ErrOrStderr(), label)
	spinner.Start()
	res, err := run(cmd.Context(), dir)
	spinner.Stop()

	if res.Command.Legacy {
		renderer.LegacyComposeNotice()
	}
	if err != nil {
		return err
	}
	if res.StderrWarning {
		ui.NewRenderer(cmd.ErrOrStderr()).StderrWarning(res.Stderr)
	}

	if action == domain.ActionUp {
		renderer.UpSummary(res)
	} else {
		renderer.DownSummary(res)
	}
	return nil
}
