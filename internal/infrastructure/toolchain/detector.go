package toolchain

import (
	"context"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-version"

	"github.com/doeshing/n8n-ready/internal/domain"
	"github.com/doeshing/n8n-ready/internal/ports"
)

// ErrComposeUnavailable is returned when neither compose form answers.
var ErrComposeUnavailable = errors.New("docker compose is not available")

var versionPattern = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?)`)

// Detector probes docker and compose through version queries.
type Detector struct {
	runner ports.CommandRunner
	log    ports.Logger
}

// NewDetector builds a detector on top of a command runner.
func NewDetector(runner ports.CommandRunner, log ports.Logger) *Detector {
	return &Detector{runner: runner, log: log}
}

// DockerVersion implements ports.ToolchainDetector.
func (d *Detector) DockerVersion(ctx context.Context) (string, error) {
	res, err := d.runner.Run(ctx, domain.CommandSpec{Name: domain.DockerBinary, Args: []string{"--version"}})
	if err != nil {
		return "", errors.Wrap(err, "docker --version")
	}
	return strings.TrimSpace(res.Stdout), nil
}

// DetectCompose implements ports.ToolchainDetector. The plugin form is tried
// first; the standalone binary is the fallback.
func (d *Detector) DetectCompose(ctx context.Context) (domain.ComposeCommand, error) {
	candidates := []struct {
		cmd   domain.ComposeCommand
		query []string
	}{
		{
			cmd:   domain.ComposeCommand{Binary: domain.DockerBinary, Args: []string{"compose"}},
			query: []string{"compose", "version"},
		},
		{
			cmd:   domain.ComposeCommand{Binary: domain.LegacyComposeBinary, Legacy: true},
			query: []string{"--version"},
		},
	}

	var errs error
	for _, c := range candidates {
		res, err := d.runner.Run(ctx, domain.CommandSpec{Name: c.cmd.Binary, Args: c.query})
		if err != nil {
			d.debug("compose candidate unavailable", map[string]interface{}{"command": c.cmd.String(), "error": err.Error()})
			errs = errors.CombineErrors(errs, err)
			continue
		}
		found := c.cmd
		found.Output = strings.TrimSpace(res.Stdout)
		found.Version = ParseVersion(found.Output)
		d.debug("compose command detected", map[string]interface{}{"command": found.String(), "legacy": found.Legacy})
		return found, nil
	}
	return domain.ComposeCommand{}, errors.Mark(errors.Wrap(errs, "detect compose"), ErrComposeUnavailable)
}

// ParseVersion pulls the first dotted version out of a tool's version banner.
// It returns nil when nothing parseable is found.
func ParseVersion(output string) *version.Version {
	m := versionPattern.FindStringSubmatch(output)
	if m == nil {
		return nil
	}
	v, err := version.NewVersion(m[1])
	if err != nil {
		return nil
	}
	return v
}

func (d *Detector) debug(msg string, fields map[string]interface{}) {
	if d.log != nil {
		d.log.Debug(msg, fields)
	}
}

var _ ports.ToolchainDetector = (*Detector)(nil)
