package compose

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/doeshing/n8n-ready/internal/domain"
	"github.com/doeshing/n8n-ready/internal/pkg/filesystem"
	"github.com/doeshing/n8n-ready/internal/ports"
)

// ErrComposeFileMissing is returned when the project has no docker-compose.yml.
var ErrComposeFileMissing = errors.New("no docker-compose.yml found in current directory")

// Result describes a completed up or down run.
type Result struct {
	Action  domain.ComposeAction
	Command domain.ComposeCommand
	Stdout  string
	Stderr  string
	// StderrWarning is set when stderr carried something other than the
	// usual progress lines.
	StderrWarning bool
	DurationMS    int64
	// Project is only populated after a successful up.
	Project domain.ProjectInfo
}

// Service brings a project's containers up or down through the detected
// compose command.
type Service struct {
	Toolchain ports.ToolchainDetector
	Runner    ports.CommandRunner
	Project   ports.ProjectReader
	Logger    ports.Logger
}

// Up runs "<compose> up -d" in dir and derives the project summary.
func (s *Service) Up(ctx context.Context, dir string) (Result, error) {
	res, err := s.run(ctx, dir, domain.ActionUp)
	if err != nil {
		return res, err
	}
	res.Project = domain.NewProjectInfo(s.Project.Inspect(dir))
	return res, nil
}

// Down runs "<compose> down" in dir.
func (s *Service) Down(ctx context.Context, dir string) (Result, error) {
	return s.run(ctx, dir, domain.ActionDown)
}

// Detect resolves the compose command without running anything else.
func (s *Service) Detect(ctx context.Context) (domain.ComposeCommand, error) {
	cmd, err := s.Toolchain.DetectCompose(ctx)
	if err != nil {
		return domain.ComposeCommand{}, errors.WithHint(
			errors.Wrap(err, "docker compose is not available"),
			"Install Docker Compose: https://docs.docker.com/compose/install/")
	}
	return cmd, nil
}

func (s *Service) run(ctx context.Context, dir string, action domain.ComposeAction) (Result, error) {
	res := Result{Action: action}
	if err := RequireComposeFile(dir); err != nil {
		return res, err
	}

	cmd, err := s.Detect(ctx)
	if err != nil {
		return res, err
	}
	res.Command = cmd

	name, args := cmd.Invocation(action.Subcommand()...)
	s.info("running compose", map[string]interface{}{"command": cmd.String(), "action": string(action), "dir": dir})

	out, err := s.Runner.Run(ctx, domain.CommandSpec{Name: name, Args: args, Dir: dir})
	res.Stdout = out.Stdout
	res.Stderr = out.Stderr
	res.DurationMS = out.DurationMS
	if err != nil {
		return res, failure(action, err, out.Stderr)
	}

	res.StderrWarning = domain.UnexpectedStderr(action, out.Stderr)
	if res.StderrWarning && s.Logger != nil {
		s.Logger.Warn("compose wrote unexpected stderr", map[string]interface{}{"action": string(action)})
	}
	return res, nil
}

// RequireComposeFile fails with remediation hints when dir has no compose file.
func RequireComposeFile(dir string) error {
	if filesystem.Exists(filepath.Join(dir, domain.ComposeFileName)) {
		return nil
	}
	return errors.WithHint(
		errors.WithHint(ErrComposeFileMissing, "Make sure you are in a n8n-ready project directory"),
		`Run "n8n-ready init <project-name>" to create a new project`)
}

func failure(action domain.ComposeAction, err error, stderr string) error {
	verb := "start"
	if action == domain.ActionDown {
		verb = "stop"
	}
	err = errors.Wrapf(err, "failed to %s services", verb)
	if detail := strings.TrimSpace(stderr); detail != "" {
		err = errors.WithDetail(err, detail)
	}
	return err
}

func (s *Service) info(msg string, fields map[string]interface{}) {
	if s.Logger != nil {
		s.Logger.Info(msg, fields)
	}
}
