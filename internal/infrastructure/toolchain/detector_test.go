package toolchain

import (
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/n8n-ready/internal/domain"
)

// scriptedRunner answers by the joined command line.
type scriptedRunner struct {
	outputs map[string]string
	calls   []string
}

func (r *scriptedRunner) Run(_ context.Context, spec domain.CommandSpec) (domain.ExecutionResult, error) {
	line := strings.Join(append([]string{spec.Name}, spec.Args...), " ")
	r.calls = append(r.calls, line)
	out, ok := r.outputs[line]
	if !ok {
		return domain.ExecutionResult{ExitCode: -1}, errors.Newf("exec: %q: executable file not found", spec.Name)
	}
	return domain.ExecutionResult{Stdout: out}, nil
}

func TestDetectComposePrefersPlugin(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{
		"docker compose version":   "Docker Compose version v2.24.5\n",
		"docker-compose --version": "docker-compose version 1.29.2, build 5becea4c\n",
	}}
	cmd, err := NewDetector(runner, nil).DetectCompose(context.Background())
	require.NoError(t, err)

	assert.False(t, cmd.Legacy)
	assert.Equal(t, "docker compose", cmd.String())
	assert.Equal(t, "Docker Compose version v2.24.5", cmd.Output)
	require.NotNil(t, cmd.Version)
	assert.Equal(t, "2.24.5", cmd.Version.String())
	assert.Equal(t, []string{"docker compose version"}, runner.calls)
}

func TestDetectComposeFallsBackToLegacy(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{
		"docker-compose --version": "docker-compose version 1.29.2, build 5becea4c\n",
	}}
	cmd, err := NewDetector(runner, nil).DetectCompose(context.Background())
	require.NoError(t, err)

	assert.True(t, cmd.Legacy)
	assert.Equal(t, "docker-compose", cmd.String())
	require.NotNil(t, cmd.Version)
	assert.Equal(t, "1.29.2", cmd.Version.String())
	assert.Equal(t, []string{"docker compose version", "docker-compose --version"}, runner.calls)
}

func TestDetectComposeNeitherAvailable(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{}}
	_, err := NewDetector(runner, nil).DetectCompose(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrComposeUnavailable))
}

func TestDockerVersion(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{
		"docker --version": "Docker version 27.3.1, build ce12230\n",
	}}
	out, err := NewDetector(runner, nil).DockerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Docker version 27.3.1, build ce12230", out)

	_, err = NewDetector(&scriptedRunner{}, nil).DockerVersion(context.Background())
	assert.Error(t, err)
}

func TestParseVersion(t *testing.T) {
	assert.Equal(t, "2.29.1", ParseVersion("Docker Compose version v2.29.1-desktop.1").String())
	assert.Equal(t, "1.29.2", ParseVersion("docker-compose version 1.29.2, build 5becea4c").String())
	assert.Nil(t, ParseVersion("no version here"))
}
