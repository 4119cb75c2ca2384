// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-ipv4cfg/internal/types"
)

//go:generate mockgen -source=network.go -destination=../mock/mock_network.go -package=mock

// AdapterConfigurationManager is the primary port for adapter IPv4 configuration.
// It is the synchronous request/response contract offered to the outer layer (CLI, UI).
// Implementations hold no cross-call state; callers serialize calls per adapter.
type AdapterConfigurationManager interface {
	// ListAdapters enumerates the host's network adapters.
	ListAdapters(ctx context.Context) ([]types.AdapterSummary, error)

	// ReadConfig returns the live IPv4 configuration of the named adapter.
	// Gateway and DNS are best effort and come back empty when they cannot be read.
	ReadConfig(ctx context.Context, adapter string) (*types.Ipv4Configuration, error)

	// ApplyConfig validates and applies the desired configuration.
	// There is no rollback: a failure after the address step leaves that step applied.
	ApplyConfig(ctx context.Context, desired types.Ipv4Configuration) (*types.Confirmation, error)
}
