package executor

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/doeshing/n8n-ready/internal/domain"
	"github.com/doeshing/n8n-ready/internal/ports"
)

// LocalExecutor runs child processes directly, without a shell.
type LocalExecutor struct {
	timeout time.Duration
	log     ports.Logger
}

// NewLocalExecutor builds an executor; timeout <= 0 falls back to the probe default.
func NewLocalExecutor(timeout time.Duration, log ports.Logger) *LocalExecutor {
	if timeout <= 0 {
		timeout = domain.DefaultCommandTimeout
	}
	return &LocalExecutor{timeout: timeout, log: log}
}

// Run implements ports.CommandRunner.
func (e *LocalExecutor) Run(ctx context.Context, spec domain.CommandSpec) (domain.ExecutionResult, error) {
	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	c := exec.CommandContext(cctx, spec.Name, spec.Args...)
	if spec.Dir != "" {
		c.Dir = spec.Dir
	}
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	result := domain.ExecutionResult{
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: time.Since(start).Milliseconds(),
	}

	fields := map[string]interface{}{
		"command":     spec.Name,
		"args":        spec.Args,
		"dir":         spec.Dir,
		"duration_ms": result.DurationMS,
	}

	if err == nil {
		e.debug("command finished", fields)
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	} else {
		result.ExitCode = -1
	}
	if cctx.Err() == context.DeadlineExceeded {
		err = errors.Wrapf(err, "%s timed out after %s", spec.Name, e.timeout)
	} else {
		err = errors.Wrapf(err, "run %s", spec.Name)
	}
	fields["exit_code"] = result.ExitCode
	e.debug("command failed", fields)
	return result, err
}

func (e *LocalExecutor) debug(msg string, fields map[string]interface{}) {
	if e.log != nil {
		e.log.Debug(msg, fields)
	}
}

var _ ports.CommandRunner = (*LocalExecutor)(nil)
