package commands

import "github.com/cockroachdb/errors"

// ErrDiagnosticsFailed is returned by doctor when at least one check errored.
// The report has already been printed, so callers only need the exit code.
var ErrDiagnosticsFailed = errors.New("diagnostics found errors")

// Flag defaults
const (
	DefaultProjectPath = "."
	DefaultProfile     = "local"
)

// Error messages
const (
	ErrConfigLoaderUnavailable   = "config loader unavailable"
	ErrDoctorServiceUnavailable  = "doctor service unavailable"
	ErrComposeServiceUnavailable = "compose service unavailable"
	ErrScaffoldUnavailable       = "scaffold service unavailable"
	ErrKeyRequired               = "--key is required"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgRunningChecks            = "Running n8n-ready system checks..."
	MsgStartingServices         = "Starting n8n services..."
	MsgStoppingServices         = "Stopping n8n services..."
)
