// Package types defines common types used across the application.
package types

// AdapterSummary identifies a network adapter for selection by the caller.
type AdapterSummary struct {
	ID           string `json:"id" yaml:"id"`                       // OS adapter key (interface alias), e.g. "Ethernet 2"
	DisplayLabel string `json:"display_label" yaml:"display_label"` // Friendly "<name> (<status>)" label
}

// Ipv4Configuration represents the IPv4 settings of a single adapter.
// Gateway, DNS1 and DNS2 may be empty, meaning the setting is not configured.
type Ipv4Configuration struct {
	Adapter string `json:"adapter" yaml:"adapter"`
	Address string `json:"ip" yaml:"ip"`           // IP address in dotted decimal notation (e.g., "192.168.1.100")
	Mask    string `json:"netmask" yaml:"netmask"` // Subnet mask in dotted decimal notation (e.g., "255.255.255.0")
	Gateway string `json:"gateway" yaml:"gateway"` // Default gateway (optional)
	DNS1    string `json:"dns1" yaml:"dns1"`       // Primary DNS server (optional)
	DNS2    string `json:"dns2" yaml:"dns2"`       // Secondary DNS server (optional, requires DNS1)
}

// ApplyStep names a mutation step of the apply sequence.
type ApplyStep string

const (
	StepAddress      ApplyStep = "Address"
	StepPrimaryDNS   ApplyStep = "PrimaryDns"
	StepSecondaryDNS ApplyStep = "SecondaryDns"
)

// Confirmation is returned when a configuration was applied.
type Confirmation struct {
	Adapter string      `json:"adapter"`
	Steps   []ApplyStep `json:"steps"`
	Message string      `json:"message"`
}

// CommandResult is the raw outcome of one external command that was launched.
type CommandResult struct {
	Success  bool
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}
