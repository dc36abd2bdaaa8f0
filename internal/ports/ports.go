// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The diagnostic engine only talks to child processes,
// sockets, DNS, HTTP and the filesystem through these interfaces, which keeps every
// check testable with stubs.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., CommandRunner, HostResolver)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/n8n-ready/internal/domain"
)

// ConfigProvider loads the tool configuration.
// Implementations typically read from ~/.n8n-ready/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CommandRunner runs a child process and captures its output streams.
// A non-zero exit is returned as an error alongside the captured result.
type CommandRunner interface {
	Run(ctx context.Context, spec domain.CommandSpec) (domain.ExecutionResult, error)
}

// ToolchainDetector discovers the container tooling installed on the host.
type ToolchainDetector interface {
	DockerVersion(ctx context.Context) (string, error)
	DetectCompose(ctx context.Context) (domain.ComposeCommand, error)
}

// PortProber reports, in input order, which ports can be bound locally.
type PortProber interface {
	Probe(ctx context.Context, ports []int) []domain.PortCheck
}

// ProjectReader extracts what the diagnostics need from a project directory.
// Missing or unreadable files are reported as absent, never as errors.
type ProjectReader interface {
	Inspect(dir string) domain.ProjectSnapshot
}

// PublicIPResolver discovers the host's externally visible address.
type PublicIPResolver interface {
	PublicIP(ctx context.Context) (string, error)
}

// HostResolver resolves a hostname through DNS.
type HostResolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
