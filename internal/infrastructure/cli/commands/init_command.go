package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/doeshing/n8n-ready/internal/app"
	"github.com/doeshing/n8n-ready/internal/application/scaffold"
	"github.com/doeshing/n8n-ready/internal/infrastructure/cli/ui"
)

// NewInitCommand creates the init command to scaffold a new project.
// The project directory gets docker-compose.yml, .env.example and a README
// for the chosen profile.
func NewInitCommand(container *app.Container) *cobra.Command {
	var (
		profile string
		host    string
	)

	cmd := &cobra.Command{
		Use:   "init <project-name>",
		Short: "Initialize a new n8n-ready project",
		Long: `Initialize a new n8n-ready project in ./<project-name>.

Profiles:
  local  n8n, PostgreSQL and Redis on localhost:5678
  prod   the same stack behind a TLS reverse proxy on ports 80/443

With --domain, .env is written from .env.example with N8N_HOST set, so the
project is ready for "n8n-ready doctor --path <project-name>".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, container, scaffold.Request{
				Name:    args[0],
				Profile: profile,
				Domain:  host,
			})
		},
	}

	cmd.Flags().StringVar(&profile, "profile", DefaultProfile, "Environment profile (local or prod)")
	cmd.Flags().StringVar(&host, "domain", "", "Public host name written to N8N_HOST in .env")
	return cmd
}

func runInit(cmd *cobra.Command, container *app.Container, req scaffold.Request) error {
	if container.ScaffoldService == nil {
		return errors.New(ErrScaffoldUnavailable)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing n8n-ready project %q with profile %q...\n", req.Name, req.Profile)

	res, err := container.ScaffoldService.Init(cmd.Context(), req)
	if err != nil {
		return errors.Wrap(err, "failed to initialize project")
	}

	ui.NewRenderer(out).InitSummary(res)
	return nil
}
