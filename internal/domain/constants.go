package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for scaffolded project files (rw-r--r--)
	FilePermissions = 0o644
	// SecureFilePermissions is the permission for files holding secrets (rw-------)
	SecureFilePermissions = 0o600
)

// Timeout and duration constants
const (
	// DefaultCommandTimeout bounds version probes of docker and compose
	DefaultCommandTimeout = 5 * time.Second
	// DefaultLookupTimeout bounds each public address lookup and DNS query
	DefaultLookupTimeout = 5 * time.Second
	// DefaultComposeTimeout bounds `up` and `down`, which may pull images
	DefaultComposeTimeout = 10 * time.Minute
)

// Orchestration commands
const (
	DockerBinary        = "docker"
	LegacyComposeBinary = "docker-compose"
)

// DefaultPublicIPServices answer a plain-text IPv4 address.
var DefaultPublicIPServices = []string{
	"https://api.ipify.org",
	"https://icanhazip.com",
	"https://checkip.amazonaws.com",
}

// Default port sets per profile
var (
	DefaultLocalPorts = []int{5678, 5432, 6379}
	DefaultProdPorts  = []int{80, 443}
)
