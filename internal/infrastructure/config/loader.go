package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/doeshing/n8n-ready/internal/domain"
	"github.com/doeshing/n8n-ready/internal/pkg/filesystem"
	"github.com/doeshing/n8n-ready/internal/ports"
)

// EnvPrefix namespaces environment overrides, e.g. N8N_READY_TIMEOUTS_LOOKUP=2s.
const EnvPrefix = "N8N_READY"

// ConfigPathEnv overrides the config file location.
const ConfigPathEnv = "N8N_READY_CONFIG"

// FileLoader loads YAML configuration from ~/.n8n-ready/config.yaml
// (overridable via N8N_READY_CONFIG). A missing file is not an error and is
// never created; defaults apply instead.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Path reports the config file location in effect.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := l.resolvePath()
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return domain.Config{}, errors.Wrapf(err, "read config %s", path)
		}
	} else if !os.IsNotExist(err) {
		return domain.Config{}, errors.Wrapf(err, "stat config %s", path)
	}

	var cfg domain.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.Config{}, errors.Wrapf(err, "decode config %s", path)
	}
	return hydrateDefaults(cfg), nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() domain.Config {
	return domain.Config{
		Timeouts: domain.TimeoutSettings{
			Command: domain.DefaultCommandTimeout,
			Lookup:  domain.DefaultLookupTimeout,
			Compose: domain.DefaultComposeTimeout,
		},
		PublicIP: domain.PublicIPSettings{
			Services: append([]string(nil), domain.DefaultPublicIPServices...),
		},
		Ports: domain.PortSettings{
			Local: append([]int(nil), domain.DefaultLocalPorts...),
			Prod:  append([]int(nil), domain.DefaultProdPorts...),
		},
	}
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("timeouts.command", def.Timeouts.Command)
	v.SetDefault("timeouts.lookup", def.Timeouts.Lookup)
	v.SetDefault("timeouts.compose", def.Timeouts.Compose)
	v.SetDefault("public_ip.services", def.PublicIP.Services)
	v.SetDefault("ports.local", def.Ports.Local)
	v.SetDefault("ports.prod", def.Ports.Prod)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	def := DefaultConfig()
	if cfg.Timeouts.Command == 0 {
		cfg.Timeouts.Command = def.Timeouts.Command
	}
	if cfg.Timeouts.Lookup == 0 {
		cfg.Timeouts.Lookup = def.Timeouts.Lookup
	}
	if cfg.Timeouts.Compose == 0 {
		cfg.Timeouts.Compose = def.Timeouts.Compose
	}
	if len(cfg.PublicIP.Services) == 0 {
		cfg.PublicIP.Services = def.PublicIP.Services
	}
	return cfg
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := os.Getenv(ConfigPathEnv); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".n8n-ready", "config.yaml")
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
