package domain

import (
	"strings"

	"github.com/hashicorp/go-version"
)

// ComposeCommand is the orchestration command that answered its version query.
type ComposeCommand struct {
	Binary  string
	Args    []string
	Legacy  bool
	Output  string
	Version *version.Version
}

// String renders the command the way an operator would type it.
func (c ComposeCommand) String() string {
	return strings.TrimSpace(strings.Join(append([]string{c.Binary}, c.Args...), " "))
}

// Invocation returns the binary and full argument list for a subcommand.
func (c ComposeCommand) Invocation(sub ...string) (string, []string) {
	args := make([]string, 0, len(c.Args)+len(sub))
	args = append(args, c.Args...)
	args = append(args, sub...)
	return c.Binary, args
}

// ComposeAction is an orchestration operation the invoker runs.
type ComposeAction string

const (
	ActionUp   ComposeAction = "up"
	ActionDown ComposeAction = "down"
)

// Subcommand returns the arguments passed to the compose command.
func (a ComposeAction) Subcommand() []string {
	if a == ActionUp {
		return []string{"up", "-d"}
	}
	return []string{"down"}
}

var progressKeywords = map[ComposeAction][]string{
	ActionUp:   {"Creating", "Starting", "Created", "Started", "Running"},
	ActionDown: {"Stopping", "Removing", "Stopped", "Removed"},
}

// UnexpectedStderr reports whether stderr from a compose run carries more
// than the usual progress output. Compose prints progress on stderr, so a
// non-empty stream only counts when none of the keywords appear.
func UnexpectedStderr(action ComposeAction, stderr string) bool {
	if strings.TrimSpace(stderr) == "" {
		return false
	}
	for _, keyword := range progressKeywords[action] {
		if strings.Contains(stderr, keyword) {
			return false
		}
	}
	return true
}

// CommandSpec describes a child process to run.
type CommandSpec struct {
	Name string
	Args []string
	Dir  string
}

// ExecutionResult wraps details from the command runner.
type ExecutionResult struct {
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationMS int64
}
