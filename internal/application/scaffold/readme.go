package scaffold

import (
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/doeshing/n8n-ready/internal/domain"
)

var readmeTemplate = template.Must(template.New("readme").Parse(`# {{.Name}}

An n8n-ready project configured for **{{.Profile}}** environment.

## Getting Started

1. **Setup environment variables:**
   ` + "```bash" + `
   cp .env.example .env
   ` + "```" + `

   Edit the ` + "`.env`" + ` file with your specific configuration.

2. **Start the services:**
   ` + "```bash" + `
   n8n-ready up
   ` + "```" + `

3. **Access n8n:**
   - **Local**: http://localhost:5678
   - **Production**: Configure your domain in the environment variables

## Configuration

This project uses Docker Compose to orchestrate the following services:
- **n8n**: Workflow automation platform
- **PostgreSQL**: Database for n8n data persistence
- **Redis**: Queue management for n8n workflows

### Environment Variables

Check ` + "`.env.example`" + ` for all available configuration options.

## Profile: {{.Profile}}

{{if .Prod -}}
This profile is optimized for production deployment:
- SSL/TLS configuration ready
- Production-grade security settings
- Persistent volumes for data safety
- Health checks enabled
{{- else -}}
This profile is optimized for local development:
- n8n accessible on localhost:5678
- Development-friendly logging
- Local data persistence
{{- end}}

## Commands

- ` + "`n8n-ready up`" + ` - Start all services in background
- ` + "`n8n-ready down`" + ` - Stop all services
- ` + "`n8n-ready doctor --path .`" + ` - Check system requirements
- ` + "`docker compose logs -f n8n`" + ` - View n8n logs
- ` + "`docker compose ps`" + ` - Show running services

## Backup

{{if .Prod -}}
For production deployments, ensure you backup:
- PostgreSQL database: ` + "`docker compose exec postgres pg_dump -U n8n n8n > backup.sql`" + `
- n8n data volume: Located at ` + "`./n8n_data`" + `
{{- else -}}
For local development, data is persisted in local volumes.
{{- end}}

---

Generated with n8n-ready CLI
`))

// RenderReadme produces README.md for a freshly scaffolded project.
func RenderReadme(name string, profile domain.Profile) (string, error) {
	var b strings.Builder
	err := readmeTemplate.Execute(&b, struct {
		Name    string
		Profile domain.Profile
		Prod    bool
	}{Name: name, Profile: profile, Prod: profile == domain.ProfileProd})
	if err != nil {
		return "", errors.Wrap(err, "render README.md")
	}
	return b.String(), nil
}
