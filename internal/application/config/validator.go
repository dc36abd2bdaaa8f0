package config

import (
	"net/url"

	"github.com/cockroachdb/errors"

	"github.com/doeshing/n8n-ready/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateTimeouts(cfg.Timeouts); err != nil {
		return err
	}
	if err := validatePublicIP(cfg.PublicIP); err != nil {
		return err
	}
	if err := validatePorts("ports.local", cfg.Ports.Local); err != nil {
		return err
	}
	return validatePorts("ports.prod", cfg.Ports.Prod)
}

func validateTimeouts(t domain.TimeoutSettings) error {
	if t.Command <= 0 {
		return errors.Newf("timeouts.command must be > 0, got %s", t.Command)
	}
	if t.Lookup <= 0 {
		return errors.Newf("timeouts.lookup must be > 0, got %s", t.Lookup)
	}
	if t.Compose <= 0 {
		return errors.Newf("timeouts.compose must be > 0, got %s", t.Compose)
	}
	return nil
}

func validatePublicIP(p domain.PublicIPSettings) error {
	if len(p.Services) == 0 {
		return errors.New("public_ip.services must list at least one service")
	}
	for _, raw := range p.Services {
		u, err := url.Parse(raw)
		if err != nil {
			return errors.Wrapf(err, "public_ip.services: invalid url %q", raw)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.Newf("public_ip.services: %q must use http or https", raw)
		}
		if u.Host == "" {
			return errors.Newf("public_ip.services: %q has no host", raw)
		}
	}
	return nil
}

func validatePorts(key string, list []int) error {
	seen := make(map[int]bool, len(list))
	for _, port := range list {
		if port < 1 || port > 65535 {
			return errors.Newf("%s: port %d out of range 1-65535", key, port)
		}
		if seen[port] {
			return errors.Newf("%s: port %d listed twice", key, port)
		}
		seen[port] = true
	}
	return nil
}
