package domain

import "time"

// Config mirrors ~/.n8n-ready/config.yaml.
type Config struct {
	Timeouts TimeoutSettings  `mapstructure:"timeouts" yaml:"timeouts"`
	PublicIP PublicIPSettings `mapstructure:"public_ip" yaml:"public_ip"`
	Ports    PortSettings     `mapstructure:"ports" yaml:"ports"`
}

// TimeoutSettings bounds every blocking call the tool makes.
type TimeoutSettings struct {
	Command time.Duration `mapstructure:"command" yaml:"command"`
	Lookup  time.Duration `mapstructure:"lookup" yaml:"lookup"`
	Compose time.Duration `mapstructure:"compose" yaml:"compose"`
}

// PublicIPSettings lists the address-lookup services, tried in order.
type PublicIPSettings struct {
	Services []string `mapstructure:"services" yaml:"services"`
}

// PortSettings holds the ports each profile needs free.
type PortSettings struct {
	Local []int `mapstructure:"local" yaml:"local"`
	Prod  []int `mapstructure:"prod" yaml:"prod"`
}

// ForProfile returns the ports to probe, or nil when nothing should be probed.
func (p PortSettings) ForProfile(profile Profile) []int {
	switch profile {
	case ProfileLocal:
		return p.Local
	case ProfileProd:
		return p.Prod
	default:
		return nil
	}
}
