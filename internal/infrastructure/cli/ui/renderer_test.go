package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/doeshing/n8n-ready/internal/application/compose"
	"github.com/doeshing/n8n-ready/internal/application/scaffold"
	"github.com/doeshing/n8n-ready/internal/domain"
)

func TestDoctorReportVerdicts(t *testing.T) {
	tests := []struct {
		name    string
		checks  []domain.CheckResult
		summary string
		verdict string
	}{
		{
			name:    "ready",
			checks:  []domain.CheckResult{domain.Success("Docker Installation", "Docker is installed", "Docker version 27.0.3")},
			summary: "Summary: 1 passed, 0 warnings, 0 errors",
			verdict: "All checks passed! Your system is ready for n8n deployment.",
		},
		{
			name: "degraded",
			checks: []domain.CheckResult{
				domain.Success("Docker Installation", "Docker is installed", ""),
				domain.Warning(domain.CategoryEnvironment, "Docker Compose", "Using legacy docker-compose command", ""),
			},
			summary: "Summary: 1 passed, 1 warnings, 0 errors",
			verdict: "Everything looks good, but there are some warnings to consider.",
		},
		{
			name: "failed",
			checks: []domain.CheckResult{
				domain.Failure(domain.CategoryEnvironment, "Docker Installation", "Docker is not installed or not accessible", ""),
				domain.Failure(domain.CategoryResource, "Port Availability", "Some ports are already in use", "Unavailable ports: 5432"),
			},
			summary: "Summary: 0 passed, 0 warnings, 2 errors",
			verdict: "Some critical issues found. Please fix them before deploying.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPlainRenderer(&buf).DoctorReport(domain.HealthReport{Checks: tt.checks})
			out := buf.String()

			assert.Contains(t, out, "n8n-ready Doctor Report")
			assert.Contains(t, out, tt.summary)
			assert.Contains(t, out, tt.verdict)
			assert.NotContains(t, out, "\x1b[", "plain output must not carry escape codes")
		})
	}
}

func TestDoctorReportListsChecksInOrder(t *testing.T) {
	var buf bytes.Buffer
	NewPlainRenderer(&buf).DoctorReport(domain.HealthReport{Checks: []domain.CheckResult{
		domain.Success("Docker Installation", "Docker is installed", "Docker version 27.0.3"),
		domain.Failure(domain.CategoryResource, "Port Availability", "Some ports are already in use", "Unavailable ports: 80, 443"),
	}})
	out := buf.String()

	first := strings.Index(out, GlyphSuccess+" Docker Installation")
	second := strings.Index(out, GlyphError+" Port Availability")
	assert.True(t, first >= 0 && second > first, out)
	assert.Contains(t, out, "   Unavailable ports: 80, 443\n")
}

func TestDoctorReportMarksIndeterminate(t *testing.T) {
	var buf bytes.Buffer
	NewPlainRenderer(&buf).DoctorReport(domain.HealthReport{Checks: []domain.CheckResult{
		domain.Failure(domain.CategoryNetwork, "Domain Configuration", "Cannot resolve domain or detect public IP", "Domain: x. Error: timeout"),
	}})
	out := buf.String()

	assert.Contains(t, out, GlyphIndeterminate+" Domain Configuration (indeterminate)")
	assert.Contains(t, out, "failed on network lookups")
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, GlyphSuccess, Glyph(domain.Success("a", "b", "")))
	assert.Equal(t, GlyphWarning, Glyph(domain.Warning(domain.CategoryDrift, "a", "b", "")))
	assert.Equal(t, GlyphError, Glyph(domain.Failure(domain.CategoryResource, "a", "b", "")))
	assert.Equal(t, GlyphIndeterminate, Glyph(domain.Failure(domain.CategoryNetwork, "a", "b", "")))
}

func TestUpSummaryProd(t *testing.T) {
	var buf bytes.Buffer
	NewPlainRenderer(&buf).UpSummary(compose.Result{
		Command: domain.ComposeCommand{Binary: "docker", Args: []string{"compose"}},
		Project: domain.ProjectInfo{Profile: domain.ProfileProd, URL: "https://n8n.example.com", Services: []string{"n8n", "postgres"}},
	})
	out := buf.String()

	assert.Contains(t, out, "Services started successfully!")
	assert.Contains(t, out, "Profile: prod")
	assert.Contains(t, out, "n8n URL: https://n8n.example.com")
	assert.Contains(t, out, "Services: n8n, postgres")
	assert.Contains(t, out, "Production Notes:")
	assert.Contains(t, out, "docker compose logs -f n8n")
	assert.Contains(t, out, "docker compose ps")
}

func TestUpSummaryLocalLegacy(t *testing.T) {
	var buf bytes.Buffer
	NewPlainRenderer(&buf).UpSummary(compose.Result{
		Command: domain.ComposeCommand{Binary: "docker-compose", Legacy: true},
		Project: domain.ProjectInfo{Profile: domain.ProfileLocal, URL: "http://localhost:5678"},
	})
	out := buf.String()

	assert.Contains(t, out, "Access your n8n instance:")
	assert.NotContains(t, out, "Production Notes:")
	assert.Contains(t, out, "docker-compose logs -f n8n")
}

func TestDownSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPlainRenderer(&buf).DownSummary(compose.Result{})
	assert.Contains(t, buf.String(), "Services stopped successfully!")
	assert.Contains(t, buf.String(), "Database data is preserved in Docker volumes")
}

func TestInitSummarySkipsEnvStepWhenWritten(t *testing.T) {
	var buf bytes.Buffer
	NewPlainRenderer(&buf).InitSummary(scaffold.Result{Name: "flows", Dir: "/tmp/flows", Profile: domain.ProfileProd, EnvWritten: true})
	out := buf.String()

	assert.Contains(t, out, "cd flows")
	assert.NotContains(t, out, "cp .env.example .env")
}

func TestPrintErrorIncludesHints(t *testing.T) {
	err := errors.WithHint(errors.WithDetail(errors.New("failed to start services"), "port is already allocated"), "Free the port and retry")
	var buf bytes.Buffer
	PrintError(&buf, err)
	out := buf.String()

	assert.Contains(t, out, GlyphError+" failed to start services")
	assert.Contains(t, out, "   port is already allocated")
	assert.Contains(t, out, "Hint: Free the port and retry")
}

func TestIsTerminalRejectsBuffers(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestSpinnerIsSilentOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Starting")
	s.Start()
	s.Stop()
	s.Stop()
	assert.Empty(t, buf.String())
}
