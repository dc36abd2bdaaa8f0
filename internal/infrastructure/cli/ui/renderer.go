package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/doeshing/n8n-ready/internal/application/compose"
	"github.com/doeshing/n8n-ready/internal/application/scaffold"
	"github.com/doeshing/n8n-ready/internal/domain"
)

const ruleWidth = 50

// Glyphs printed in front of each check.
const (
	GlyphSuccess       = "✔"
	GlyphWarning       = "⚠"
	GlyphError         = "✖"
	GlyphIndeterminate = "?"
)

// Renderer prints operator-facing output. Colour is only used when the
// writer is a terminal.
type Renderer struct {
	out   io.Writer
	color bool

	ok    lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
	title lipgloss.Style
}

// NewRenderer builds a renderer for out.
func NewRenderer(out io.Writer) *Renderer {
	return newRenderer(out, IsTerminal(out))
}

// NewPlainRenderer never emits escape codes.
func NewPlainRenderer(out io.Writer) *Renderer {
	return newRenderer(out, false)
}

func newRenderer(out io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(out)
	return &Renderer{
		out:   out,
		color: color,
		ok:    lr.NewStyle().Foreground(lipgloss.Color("10")),
		warn:  lr.NewStyle().Foreground(lipgloss.Color("11")),
		fail:  lr.NewStyle().Foreground(lipgloss.Color("9")),
		muted: lr.NewStyle().Foreground(lipgloss.Color("8")),
		title: lr.NewStyle().Bold(true),
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Renderer) paint(style lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return style.Render(text)
}

func (r *Renderer) println(a ...interface{}) {
	fmt.Fprintln(r.out, a...)
}

func (r *Renderer) printf(format string, a ...interface{}) {
	fmt.Fprintf(r.out, format, a...)
}

// Glyph returns the marker for a check result.
func Glyph(check domain.CheckResult) string {
	switch {
	case check.Indeterminate():
		return GlyphIndeterminate
	case check.Status == domain.StatusSuccess:
		return GlyphSuccess
	case check.Status == domain.StatusWarning:
		return GlyphWarning
	default:
		return GlyphError
	}
}

func (r *Renderer) statusStyle(check domain.CheckResult) lipgloss.Style {
	switch check.Status {
	case domain.StatusSuccess:
		return r.ok
	case domain.StatusWarning:
		return r.warn
	default:
		return r.fail
	}
}

// DoctorReport prints the banner, every check, the summary and the verdict.
func (r *Renderer) DoctorReport(report domain.HealthReport) {
	rule := strings.Repeat("═", ruleWidth)

	r.println()
	r.println(r.paint(r.title, "n8n-ready Doctor Report"))
	r.println(rule)

	indeterminate := false
	for _, check := range report.Checks {
		style := r.statusStyle(check)
		name := check.Name
		if check.Indeterminate() {
			indeterminate = true
			name += " " + r.paint(r.muted, "(indeterminate)")
		}
		r.println()
		r.printf("%s %s\n", r.paint(style, Glyph(check)), name)
		r.printf("   %s\n", check.Message)
		if check.Details != "" {
			r.printf("   %s\n", r.paint(r.muted, check.Details))
		}
	}

	r.println()
	r.println(rule)

	s := report.Summary()
	r.println()
	r.printf("Summary: %d passed, %d warnings, %d errors\n", s.Success, s.Warning, s.Error)
	r.println()

	switch report.Verdict() {
	case domain.VerdictFailed:
		r.println(r.paint(r.fail, GlyphError+" Some critical issues found. Please fix them before deploying."))
		if indeterminate {
			r.println(r.paint(r.muted, "  Checks marked indeterminate failed on network lookups, not on local configuration."))
		}
	case domain.VerdictDegraded:
		r.println(r.paint(r.warn, GlyphWarning+" Everything looks good, but there are some warnings to consider."))
	default:
		r.println(r.paint(r.ok, GlyphSuccess+" All checks passed! Your system is ready for n8n deployment."))
	}
}

// LegacyComposeNotice is printed when up/down fall back to docker-compose.
func (r *Renderer) LegacyComposeNotice() {
	r.println(r.paint(r.warn, GlyphWarning+" Using legacy docker-compose command"))
}

// StderrWarning echoes compose stderr that did not look like progress output.
func (r *Renderer) StderrWarning(stderr string) {
	r.printf("%s %s\n", r.paint(r.warn, GlyphWarning+" Warning:"), strings.TrimSpace(stderr))
}

// UpSummary prints project information and follow-up commands after up.
func (r *Renderer) UpSummary(res compose.Result) {
	info := res.Project
	r.println(r.paint(r.ok, GlyphSuccess+" Services started successfully!"))
	r.println()
	r.println(r.paint(r.title, "Project Information:"))
	r.printf("   Profile: %s\n", info.Profile)
	r.printf("   n8n URL: %s\n", info.URL)
	if len(info.Services) > 0 {
		r.printf("   Services: %s\n", strings.Join(info.Services, ", "))
	}

	if info.Profile == domain.ProfileLocal || info.Profile == domain.ProfileProd {
		r.println()
		r.println(r.paint(r.title, "Access your n8n instance:"))
		r.printf("   %s\n", info.URL)
	}
	if info.Profile == domain.ProfileProd {
		r.println()
		r.println(r.paint(r.warn, "Production Notes:"))
		r.println("   • Make sure your domain points to this server")
		r.println("   • Configure SSL/TLS certificates if using HTTPS")
		r.println("   • Check firewall settings for ports 80/443")
	}

	cmd := res.Command.String()
	r.println()
	r.println(r.paint(r.title, "Useful Commands:"))
	r.printf("   %-32s # Stop all services\n", "n8n-ready down")
	r.printf("   %-32s # View n8n logs\n", cmd+" logs -f n8n")
	r.printf("   %-32s # Check service status\n", cmd+" ps")
	r.printf("   %-32s # Re-run diagnostics\n", "n8n-ready doctor --path .")
}

// DownSummary prints data preservation notes after down.
func (r *Renderer) DownSummary(compose.Result) {
	r.println(r.paint(r.ok, GlyphSuccess+" Services stopped successfully!"))
	r.println()
	r.println(r.paint(r.title, "Data Preservation:"))
	r.println("   • Database data is preserved in Docker volumes")
	r.println("   • n8n workflows and credentials are safe")
	r.println(`   • Run "n8n-ready up" to restart services`)
}

// InitSummary prints where the project went and what to do next.
func (r *Renderer) InitSummary(res scaffold.Result) {
	r.println(r.paint(r.ok, GlyphSuccess+" Project initialized successfully!"))
	r.printf("Project created at: %s\n", res.Dir)
	r.printf("Profile: %s\n", res.Profile)
	r.println()
	r.println(r.paint(r.title, "Next steps:"))
	r.printf("   cd %s\n", res.Name)
	if !res.EnvWritten {
		r.println("   cp .env.example .env")
		r.println("   # Edit .env with your configuration")
	}
	r.println("   n8n-ready doctor --path .")
	r.println("   n8n-ready up")
}
