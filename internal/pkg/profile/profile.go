// Package profile stores IPv4 configurations as YAML documents so a
// configuration read from one adapter can be edited and applied later.
package profile

import (
	"fmt"

	"golang-ipv4cfg/internal/port"
	"golang-ipv4cfg/internal/types"

	"gopkg.in/yaml.v3"
)

const header = "# IPv4 configuration profile\n"

// Store reads and writes profiles through a FileManager.
type Store struct {
	files port.FileManager
}

// NewStore creates a profile store.
func NewStore(files port.FileManager) *Store {
	return &Store{files: files}
}

// Save writes cfg to filename. An existing file is only replaced when overwrite is set.
func (s *Store) Save(filename string, cfg types.Ipv4Configuration, overwrite bool) error {
	if !overwrite && s.files.FileExists(filename) {
		return fmt.Errorf("profile %s already exists", filename)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if err := s.files.WriteFile(filename, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Load reads a profile. The result is not validated.
func (s *Store) Load(filename string) (types.Ipv4Configuration, error) {
	var cfg types.Ipv4Configuration

	data, err := s.files.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to load profile: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse profile %s: %w", filename, err)
	}
	return cfg, nil
}
