package project

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/n8n-ready/internal/domain"
	"github.com/doeshing/n8n-ready/internal/ports"
)

var envPatterns = map[string]*regexp.Regexp{
	domain.EnvKeyHost:     envKeyPattern(domain.EnvKeyHost),
	domain.EnvKeyPort:     envKeyPattern(domain.EnvKeyPort),
	domain.EnvKeyProtocol: envKeyPattern(domain.EnvKeyProtocol),
}

func envKeyPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `=(.+)$`)
}

// FileReader reads docker-compose.yml and .env without requiring either to
// be a well-formed document.
type FileReader struct {
	log ports.Logger
}

// NewFileReader builds a reader.
func NewFileReader(log ports.Logger) *FileReader {
	return &FileReader{log: log}
}

// Inspect implements ports.ProjectReader.
func (r *FileReader) Inspect(dir string) domain.ProjectSnapshot {
	snapshot := domain.ProjectSnapshot{Dir: dir}

	if content, ok := r.read(filepath.Join(dir, domain.ComposeFileName)); ok {
		snapshot.ComposeFound = true
		snapshot.ComposeContent = content
		snapshot.Services = ComposeServices(content)
	}

	if content, ok := r.read(filepath.Join(dir, domain.EnvFileName)); ok {
		snapshot.EnvFound = true
		snapshot.Env = ParseEnv(content)
	} else {
		snapshot.Env = ParseEnv("")
	}
	return snapshot
}

func (r *FileReader) read(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if r.log != nil && !os.IsNotExist(err) {
			r.log.Warn("project file unreadable, using defaults", map[string]interface{}{"path": path, "error": err.Error()})
		}
		return "", false
	}
	return string(data), true
}

// ParseEnv extracts the recognised keys from .env content. Each key takes its
// first KEY=value line; values are trimmed, and an empty value keeps the default.
func ParseEnv(content string) domain.EnvSettings {
	env := domain.EnvSettings{
		Host:     domain.DefaultHost,
		Port:     domain.DefaultPort,
		Protocol: domain.DefaultProtocol,
	}
	if v, ok := firstValue(content, domain.EnvKeyHost); ok {
		env.Host, env.HostSet = v, true
	}
	if v, ok := firstValue(content, domain.EnvKeyPort); ok {
		env.Port, env.PortSet = v, true
	}
	if v, ok := firstValue(content, domain.EnvKeyProtocol); ok {
		env.Protocol, env.ProtocolSet = v, true
	}
	return env
}

func firstValue(content, key string) (string, bool) {
	m := envPatterns[key].FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	if v == "" {
		return "", false
	}
	return v, true
}

// ComposeServices lists service names from a compose definition, sorted.
// Content that is not valid YAML yields nil.
func ComposeServices(content string) []string {
	var doc struct {
		Services map[string]yaml.Node `yaml:"services"`
	}
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil
	}
	if len(doc.Services) == 0 {
		return nil
	}
	names := make([]string, 0, len(doc.Services))
	for name := range doc.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ ports.ProjectReader = (*FileReader)(nil)
