// Package validate checks a desired IPv4 configuration before it is applied.
package validate

import (
	"strings"

	"golang-ipv4cfg/internal/pkg/subnet"
	"golang-ipv4cfg/internal/types"
)

// Normalize returns a copy of cfg with surrounding whitespace removed from every field.
func Normalize(cfg types.Ipv4Configuration) types.Ipv4Configuration {
	return types.Ipv4Configuration{
		Adapter: strings.TrimSpace(cfg.Adapter),
		Address: strings.TrimSpace(cfg.Address),
		Mask:    strings.TrimSpace(cfg.Mask),
		Gateway: strings.TrimSpace(cfg.Gateway),
		DNS1:    strings.TrimSpace(cfg.DNS1),
		DNS2:    strings.TrimSpace(cfg.DNS2),
	}
}

// Config validates a desired configuration and returns the first failure.
// Checks run in a fixed order: adapter, address, mask, gateway, dns1, dns2.
// No cross-field checks are made.
func Config(cfg types.Ipv4Configuration) error {
	if strings.TrimSpace(cfg.Adapter) == "" {
		return types.ErrMissingAdapter
	}
	if !required(cfg.Address) {
		return types.ErrInvalidAddress
	}
	if !required(cfg.Mask) {
		return types.ErrInvalidMask
	}
	if !subnet.IsValidDottedQuad(cfg.Gateway) {
		return types.ErrInvalidGateway
	}
	if !subnet.IsValidDottedQuad(cfg.DNS1) {
		return types.ErrInvalidDNS1
	}
	if !subnet.IsValidDottedQuad(cfg.DNS2) {
		return types.ErrInvalidDNS2
	}
	return nil
}

func required(value string) bool {
	return strings.TrimSpace(value) != "" && subnet.IsValidDottedQuad(value)
}
