// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-ipv4cfg/internal/types"
)

//go:generate mockgen -source=infrastructure.go -destination=../mock/mock_infrastructure.go -package=mock

// CommandGateway is a port for executing OS network-management commands.
// This interface abstracts the command interpreter so the rest of the system
// can be tested against canned output.
type CommandGateway interface {
	// Run executes a single command and blocks until it exits.
	// A non-nil error means the command could not be started (ErrGatewayLaunch);
	// a command that ran and failed is reported through CommandResult.Success.
	Run(ctx context.Context, command string) (*types.CommandResult, error)
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile writes data to a file with specified permissions
	WriteFile(filename string, data []byte, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool
}
