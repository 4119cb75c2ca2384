package config

import (
	"fmt"
	"os"
	"time"

	"golang-ipv4cfg/internal/adapter/infrastructure/shell"
	"golang-ipv4cfg/internal/pkg/logging"
	"golang-ipv4cfg/internal/pkg/parser"
	"golang-ipv4cfg/internal/pkg/validate"
	"golang-ipv4cfg/internal/types"

	"gopkg.in/yaml.v3"
)

// ShellConfig describes the command interpreter used to reach the OS network configuration
type ShellConfig struct {
	Path     string        `yaml:"path"`
	Args     []string      `yaml:"args"`
	Preamble string        `yaml:"preamble"`
	Encoding string        `yaml:"encoding"` // fallback encoding of command output (e.g. utf-8, gbk)
	Timeout  time.Duration `yaml:"timeout"`  // 0 disables the timeout
}

// ProfileConfig represents a named desired IPv4 configuration
type ProfileConfig struct {
	Adapter string `yaml:"adapter"`
	IP      string `yaml:"ip"`
	Netmask string `yaml:"netmask"`
	Gateway string `yaml:"gateway"`
	DNS1    string `yaml:"dns1"`
	DNS2    string `yaml:"dns2"`
}

// Config represents the main configuration structure
type Config struct {
	Logging  logging.LogConfig        `yaml:"logging"`
	Shell    ShellConfig              `yaml:"shell"`
	Profiles map[string]ProfileConfig `yaml:"profiles"`
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	opts := shell.DefaultOptions()
	return &Config{
		Logging: logging.LogConfig{
			Level:  "warning",
			Format: "simple",
		},
		Shell: ShellConfig{
			Path:     opts.Path,
			Args:     opts.Args,
			Preamble: opts.Preamble,
			Encoding: "utf-8",
		},
	}
}

// Load loads configuration from a YAML file. Keys absent from the file keep their defaults.
// An empty path returns the defaults.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// GetProfile returns the named profile
func (c *Config) GetProfile(name string) (ProfileConfig, bool) {
	profile, exists := c.Profiles[name]
	return profile, exists
}

// ShellOptions converts the shell section to gateway options
func (c *Config) ShellOptions() shell.Options {
	return shell.Options{
		Path:     c.Shell.Path,
		Args:     c.Shell.Args,
		Preamble: c.Shell.Preamble,
		Timeout:  c.Shell.Timeout,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Shell.Path == "" {
		return fmt.Errorf("shell: path is required")
	}
	if c.Shell.Timeout < 0 {
		return fmt.Errorf("shell: timeout must not be negative")
	}
	if _, err := parser.NewDecoder(c.Shell.Encoding); err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	for name, profile := range c.Profiles {
		if err := validate.Config(validate.Normalize(profile.Desired())); err != nil {
			return fmt.Errorf("profile %s: %w", name, err)
		}
	}

	return nil
}

// Desired converts the profile to a desired configuration
func (p ProfileConfig) Desired() types.Ipv4Configuration {
	return types.Ipv4Configuration{
		Adapter: p.Adapter,
		Address: p.IP,
		Mask:    p.Netmask,
		Gateway: p.Gateway,
		DNS1:    p.DNS1,
		DNS2:    p.DNS2,
	}
}
