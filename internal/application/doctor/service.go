package doctor

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-version"
	"golang.org/x/sync/errgroup"

	"github.com/doeshing/n8n-ready/internal/domain"
	"github.com/doeshing/n8n-ready/internal/pkg/filesystem"
	"github.com/doeshing/n8n-ready/internal/ports"
)

// Check names as they appear in the report.
const (
	CheckDocker  = "Docker Installation"
	CheckCompose = "Docker Compose"
	CheckPorts   = "Port Availability"
	CheckDomain  = "Domain Configuration"
)

var composeV2 = version.Must(version.NewVersion("2.0.0"))

// Service runs environment diagnostics.
type Service struct {
	Toolchain ports.ToolchainDetector
	Prober    ports.PortProber
	Project   ports.ProjectReader
	PublicIP  ports.PublicIPResolver
	DNS       ports.HostResolver
	PortSets  domain.PortSettings
	Logger    ports.Logger
}

// Run executes checks in a fixed order and returns every result. Individual
// probe failures become results; Run itself never fails.
func (s *Service) Run(ctx context.Context, projectPath string) domain.HealthReport {
	var checks []domain.CheckResult

	checks = append(checks, s.dockerCheck(ctx))
	checks = append(checks, s.composeCheck(ctx))

	if projectPath != "" && filesystem.IsDir(projectPath) {
		snapshot := s.Project.Inspect(projectPath)
		profile := snapshot.Profile()
		s.debug("project inspected", map[string]interface{}{
			"path":    projectPath,
			"profile": string(profile),
			"env":     snapshot.EnvFound,
		})

		if required := s.PortSets.ForProfile(profile); required != nil {
			checks = append(checks, s.portCheck(ctx, required))
		}
		if snapshot.EnvFound {
			checks = append(checks, s.domainCheck(ctx, snapshot.Env))
		}
	}

	report := domain.HealthReport{Checks: checks}
	summary := report.Summary()
	s.debug("doctor finished", map[string]interface{}{
		"success": summary.Success,
		"warning": summary.Warning,
		"error":   summary.Error,
	})
	return report
}

func (s *Service) dockerCheck(ctx context.Context) domain.CheckResult {
	out, err := s.Toolchain.DockerVersion(ctx)
	if err != nil {
		s.debug("docker probe failed", map[string]interface{}{"error": err.Error()})
		return domain.Failure(domain.CategoryEnvironment, CheckDocker,
			"Docker is not installed or not accessible",
			"Install Docker from https://docs.docker.com/get-docker/")
	}
	return domain.Success(CheckDocker, "Docker is installed", out)
}

func (s *Service) composeCheck(ctx context.Context) domain.CheckResult {
	cmd, err := s.Toolchain.DetectCompose(ctx)
	if err != nil {
		s.debug("compose probe failed", map[string]interface{}{"error": err.Error()})
		return domain.Failure(domain.CategoryEnvironment, CheckCompose,
			"Docker Compose is not available",
			"Make sure Docker Compose is installed")
	}
	if !cmd.Legacy {
		return domain.Success(CheckCompose, "Docker Compose is available", cmd.Output)
	}
	return domain.Warning(domain.CategoryEnvironment, CheckCompose,
		"Using legacy docker-compose command", legacyDetails(cmd))
}

// legacyDetails points standalone v1 users at the plugin; a standalone v2
// binary only needs the plugin form.
func legacyDetails(cmd domain.ComposeCommand) string {
	if cmd.Version != nil && cmd.Version.GreaterThanOrEqual(composeV2) {
		return fmt.Sprintf("%s. Install the Docker Compose plugin to use \"docker compose\"", cmd.Output)
	}
	return fmt.Sprintf("%s. Consider upgrading to Docker Compose V2", cmd.Output)
}

func (s *Service) portCheck(ctx context.Context, required []int) domain.CheckResult {
	results := s.Prober.Probe(ctx, required)

	var busy []int
	for _, r := range results {
		if !r.Available {
			busy = append(busy, r.Port)
		}
	}
	if len(busy) == 0 {
		return domain.Success(CheckPorts, "All required ports are available",
			"Checked ports: "+joinPorts(required))
	}
	return domain.Failure(domain.CategoryResource, CheckPorts, "Some ports are already in use",
		"Unavailable ports: "+joinPorts(busy))
}

func joinPorts(list []int) string {
	parts := make([]string, len(list))
	for i, p := range list {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}

func (s *Service) domainCheck(ctx context.Context, env domain.EnvSettings) domain.CheckResult {
	if !env.HostSet {
		return domain.Warning(domain.CategoryConfiguration, CheckDomain,
			"N8N_HOST not configured in .env", "Set N8N_HOST to your domain name")
	}
	host := env.Host
	if domain.IsLocalHost(host) {
		return domain.Success(CheckDomain, "Using localhost configuration", "Domain: localhost")
	}

	var (
		publicIP string
		resolved []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ip, err := s.PublicIP.PublicIP(gctx)
		publicIP = ip
		return err
	})
	g.Go(func() error {
		addrs, err := s.DNS.LookupHost(gctx, host)
		resolved = addrs
		return err
	})
	if err := g.Wait(); err != nil {
		s.debug("domain lookup failed", map[string]interface{}{"host": host, "error": err.Error()})
		return domain.Failure(domain.CategoryNetwork, CheckDomain,
			"Cannot resolve domain or detect public IP",
			fmt.Sprintf("Domain: %s. Error: %s", host, err.Error()))
	}
	if len(resolved) == 0 {
		return domain.Failure(domain.CategoryNetwork, CheckDomain,
			"Cannot resolve domain or detect public IP",
			fmt.Sprintf("Domain: %s. Error: no addresses returned", host))
	}

	for _, addr := range resolved {
		if addr == publicIP {
			return domain.Success(CheckDomain, "Domain points to this server",
				fmt.Sprintf("%s → %s", host, addr))
		}
	}
	return domain.Warning(domain.CategoryDrift, CheckDomain, "Domain does not point to this server",
		fmt.Sprintf("%s → %s, but server IP is %s", host, strings.Join(resolved, ", "), publicIP))
}

func (s *Service) debug(msg string, fields map[string]interface{}) {
	if s.Logger != nil {
		s.Logger.Debug(msg, fields)
	}
}
