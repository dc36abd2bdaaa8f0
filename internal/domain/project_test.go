package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/n8n-ready/internal/domain"
)

const prodCompose = `services:
  n8n:
    image: n8nio/n8n
    networks:
      - n8n_network
networks:
  n8n_network:
    driver: bridge
`

const localCompose = `services:
  n8n:
    image: n8nio/n8n
    ports:
      - "5678:5678"
`

func TestDetectProfile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		found   bool
		want    domain.Profile
	}{
		{name: "both markers", content: prodCompose, found: true, want: domain.ProfileProd},
		{name: "no markers", content: localCompose, found: true, want: domain.ProfileLocal},
		{name: "only networks marker", content: "networks:\n  default: {}\n", found: true, want: domain.ProfileLocal},
		{name: "only network name", content: "# n8n_network\n", found: true, want: domain.ProfileLocal},
		{name: "markers anywhere in the file", content: "# networks: n8n_network", found: true, want: domain.ProfileProd},
		{name: "empty file", content: "", found: true, want: domain.ProfileLocal},
		{name: "no file", content: "", found: false, want: domain.ProfileUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DetectProfile(tt.content, tt.found))
		})
	}
}

func TestNewProjectInfoURL(t *testing.T) {
	tests := []struct {
		name     string
		snapshot domain.ProjectSnapshot
		wantURL  string
		wantProf domain.Profile
	}{
		{
			name: "explicit port kept",
			snapshot: domain.ProjectSnapshot{
				ComposeFound:   true,
				ComposeContent: localCompose,
				Env: domain.EnvSettings{
					Host: "example.com", HostSet: true,
					Port: "8080", PortSet: true,
					Protocol: "https", ProtocolSet: true,
				},
			},
			wantURL:  "https://example.com:8080",
			wantProf: domain.ProfileLocal,
		},
		{
			name: "https default port omitted",
			snapshot: domain.ProjectSnapshot{
				ComposeFound:   true,
				ComposeContent: localCompose,
				Env: domain.EnvSettings{
					Host: "example.com", HostSet: true,
					Port: "443", PortSet: true,
					Protocol: "https", ProtocolSet: true,
				},
			},
			wantURL:  "https://example.com",
			wantProf: domain.ProfileLocal,
		},
		{
			name:     "local defaults",
			snapshot: domain.ProjectSnapshot{ComposeFound: true, ComposeContent: localCompose},
			wantURL:  "http://localhost:5678",
			wantProf: domain.ProfileLocal,
		},
		{
			name:     "prod defaults drop port 80",
			snapshot: domain.ProjectSnapshot{ComposeFound: true, ComposeContent: prodCompose},
			wantURL:  "https://localhost",
			wantProf: domain.ProfileProd,
		},
		{
			name: "prod with host only",
			snapshot: domain.ProjectSnapshot{
				ComposeFound:   true,
				ComposeContent: prodCompose,
				Env:            domain.EnvSettings{Host: "n8n.example.org", HostSet: true},
			},
			wantURL:  "https://n8n.example.org",
			wantProf: domain.ProfileProd,
		},
		{
			name:     "no compose file",
			snapshot: domain.ProjectSnapshot{},
			wantURL:  "http://localhost:5678",
			wantProf: domain.ProfileUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := domain.NewProjectInfo(tt.snapshot)
			assert.Equal(t, tt.wantURL, info.URL)
			assert.Equal(t, tt.wantProf, info.Profile)
		})
	}
}

func TestBuildURLOmitsConventionalPortsOnly(t *testing.T) {
	assert.Equal(t, "http://host", domain.BuildURL("http", "host", "80"))
	assert.Equal(t, "https://host", domain.BuildURL("https", "host", "443"))
	// The omission rule looks at the port alone.
	assert.Equal(t, "http://host", domain.BuildURL("http", "host", "443"))
	assert.Equal(t, "http://host:8443", domain.BuildURL("http", "host", "8443"))
	assert.Equal(t, "https://host:080", domain.BuildURL("https", "host", "080"))
}

func TestParseProfile(t *testing.T) {
	p, ok := domain.ParseProfile("Prod")
	assert.True(t, ok)
	assert.Equal(t, domain.ProfileProd, p)

	_, ok = domain.ParseProfile("staging")
	assert.False(t, ok)

	_, ok = domain.ParseProfile("unknown")
	assert.False(t, ok)
}

func TestPortSettingsForProfile(t *testing.T) {
	ports := domain.PortSettings{Local: domain.DefaultLocalPorts, Prod: domain.DefaultProdPorts}
	assert.Equal(t, []int{5678, 5432, 6379}, ports.ForProfile(domain.ProfileLocal))
	assert.Equal(t, []int{80, 443}, ports.ForProfile(domain.ProfileProd))
	assert.Nil(t, ports.ForProfile(domain.ProfileUnknown))
}
