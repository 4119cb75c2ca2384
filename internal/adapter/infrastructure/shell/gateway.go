// Package shell provides the OS command gateway adapter implementation.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"golang-ipv4cfg/internal/port"
	"golang-ipv4cfg/internal/types"
)

// DefaultPreamble forces UTF-8 on the PowerShell console and pipeline so adapter
// names outside the active code page survive, and turns cmdlet errors into a
// non-zero exit status.
const DefaultPreamble = "$OutputEncoding = [System.Text.Encoding]::UTF8; " +
	"[Console]::OutputEncoding = [System.Text.Encoding]::UTF8; " +
	"$ErrorActionPreference = 'Stop'; "

// Options configures the interpreter a GatewayAdapter launches.
type Options struct {
	Path     string        // Interpreter executable, e.g. "powershell.exe"
	Args     []string      // Arguments placed before the command text, e.g. "-Command"
	Preamble string        // Prepended to every command
	Timeout  time.Duration // Zero means no timeout
}

// DefaultOptions returns the Windows PowerShell options.
func DefaultOptions() Options {
	return Options{
		Path:     "powershell.exe",
		Args:     []string{"-NoProfile", "-NonInteractive", "-Command"},
		Preamble: DefaultPreamble,
	}
}

// GatewayAdapter is an adapter that implements the CommandGateway port using os/exec.
// The command text is passed to the interpreter as a single argument; no
// retries are made.
type GatewayAdapter struct {
	opts Options
}

// Ensure GatewayAdapter implements the CommandGateway port
var _ port.CommandGateway = (*GatewayAdapter)(nil)

// NewGatewayAdapter creates a new command gateway adapter.
func NewGatewayAdapter(opts Options) *GatewayAdapter {
	return &GatewayAdapter{opts: opts}
}

// Run executes command and blocks until the interpreter exits.
func (g *GatewayAdapter) Run(ctx context.Context, command string) (*types.CommandResult, error) {
	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	args := make([]string, 0, len(g.opts.Args)+1)
	args = append(args, g.opts.Args...)
	args = append(args, g.opts.Preamble+command)

	cmd := exec.CommandContext(ctx, g.opts.Path, args...)
	configureProcess(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return &types.CommandResult{
			Success: true,
			Stdout:  stdout.Bytes(),
			Stderr:  stderr.Bytes(),
		}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &types.CommandResult{
			Success:  false,
			ExitCode: exitErr.ExitCode(),
			Stdout:   stdout.Bytes(),
			Stderr:   stderr.Bytes(),
		}, nil
	}

	return nil, &types.GatewayError{
		Command: command,
		Cause:   err,
		Err:     types.ErrGatewayLaunch,
	}
}
