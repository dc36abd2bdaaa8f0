package domain

import "strings"

// Profile is the deployment shape inferred from the compose definition.
type Profile string

const (
	ProfileLocal   Profile = "local"
	ProfileProd    Profile = "prod"
	ProfileUnknown Profile = "unknown"
)

// ParseProfile accepts only the profiles a project can be scaffolded with.
func ParseProfile(value string) (Profile, bool) {
	switch Profile(strings.ToLower(strings.TrimSpace(value))) {
	case ProfileLocal:
		return ProfileLocal, true
	case ProfileProd:
		return ProfileProd, true
	default:
		return ProfileUnknown, false
	}
}

// Project file names.
const (
	ComposeFileName = "docker-compose.yml"
	EnvFileName     = ".env"
	EnvExampleName  = ".env.example"
	ReadmeFileName  = "README.md"
)

// Recognised .env keys.
const (
	EnvKeyHost     = "N8N_HOST"
	EnvKeyPort     = "N8N_PORT"
	EnvKeyProtocol = "N8N_PROTOCOL"
)

// Defaults used when .env does not say otherwise.
const (
	DefaultHost      = "localhost"
	DefaultPort      = "5678"
	DefaultProtocol  = "http"
	ProdDefaultPort  = "80"
	ProdDefaultProto = "https"
)

// Markers the production template uses for its named network.
const (
	composeNetworksMarker = "networks:"
	composeProdNetwork    = "n8n_network"
)

// IsProductionCompose reports whether a compose definition looks like the
// production template. It is a substring heuristic, not a schema parse.
func IsProductionCompose(content string) bool {
	return strings.Contains(content, composeNetworksMarker) && strings.Contains(content, composeProdNetwork)
}

// DetectProfile classifies raw compose content. found is false when the
// compose file could not be read at all.
func DetectProfile(content string, found bool) Profile {
	if !found {
		return ProfileUnknown
	}
	if IsProductionCompose(content) {
		return ProfileProd
	}
	return ProfileLocal
}

// EnvSettings holds the values extracted from .env. The *Set fields record
// whether the key was present with a non-empty value.
type EnvSettings struct {
	Host        string
	Port        string
	Protocol    string
	HostSet     bool
	PortSet     bool
	ProtocolSet bool
}

// ProjectSnapshot is what the configuration reader found in a project dir.
type ProjectSnapshot struct {
	Dir            string
	ComposeFound   bool
	ComposeContent string
	Services       []string
	EnvFound       bool
	Env            EnvSettings
}

// Profile runs the shared profile heuristic over the snapshot.
func (s ProjectSnapshot) Profile() Profile {
	return DetectProfile(s.ComposeContent, s.ComposeFound)
}

// ProjectInfo is the operator-facing view of a project, derived fresh on
// every call.
type ProjectInfo struct {
	Profile  Profile
	Host     string
	Port     string
	Protocol string
	URL      string
	Services []string
}

// NewProjectInfo applies profile defaults first, then .env overrides.
func NewProjectInfo(snapshot ProjectSnapshot) ProjectInfo {
	info := ProjectInfo{
		Profile:  snapshot.Profile(),
		Host:     DefaultHost,
		Port:     DefaultPort,
		Protocol: DefaultProtocol,
		Services: snapshot.Services,
	}
	if info.Profile == ProfileProd {
		info.Port = ProdDefaultPort
		info.Protocol = ProdDefaultProto
	}
	env := snapshot.Env
	if env.HostSet {
		info.Host = env.Host
	}
	if env.PortSet {
		info.Port = env.Port
	}
	if env.ProtocolSet {
		info.Protocol = env.Protocol
	}
	info.URL = BuildURL(info.Protocol, info.Host, info.Port)
	return info
}

// BuildURL renders scheme://host[:port]. The port suffix is dropped exactly
// when the port is 80 or 443, whatever the scheme.
func BuildURL(protocol, host, port string) string {
	if port == "80" || port == "443" {
		return protocol + "://" + host
	}
	return protocol + "://" + host + ":" + port
}

// IsLocalHost reports hosts the domain check never resolves.
func IsLocalHost(host string) bool {
	return host == "localhost" || host == "127.0.0.1"
}

// PortCheck is the outcome of probing one port.
type PortCheck struct {
	Port      int
	Available bool
}
