package types

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors, reported in the order the validator checks them.
var (
	ErrMissingAdapter = errors.New("no network adapter selected")
	ErrInvalidAddress = errors.New("IP address is required and must use xxx.xxx.xxx.xxx format")
	ErrInvalidMask    = errors.New("subnet mask is required and must use xxx.xxx.xxx.xxx format")
	ErrInvalidGateway = errors.New("gateway must use xxx.xxx.xxx.xxx format or be empty")
	ErrInvalidDNS1    = errors.New("primary DNS must use xxx.xxx.xxx.xxx format or be empty")
	ErrInvalidDNS2    = errors.New("secondary DNS must use xxx.xxx.xxx.xxx format or be empty")
)

var (
	ErrInvalidPrefixLength = errors.New("invalid prefix length")
	ErrGatewayLaunch       = errors.New("command could not be started")
	ErrGatewayNonZeroExit  = errors.New("command exited with failure")
	ErrUnparseableOutput   = errors.New("unparseable command output")
)

// GatewayError describes a failed external command. Err is either
// ErrGatewayLaunch or ErrGatewayNonZeroExit.
type GatewayError struct {
	Command  string
	ExitCode int
	Stderr   string
	Cause    error
	Err      error
}

func (e *GatewayError) Error() string {
	if errors.Is(e.Err, ErrGatewayLaunch) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Err, e.Cause)
		}
		return e.Err.Error()
	}
	detail := strings.TrimSpace(e.Stderr)
	if detail == "" {
		return fmt.Sprintf("%s (exit code %d)", e.Err, e.ExitCode)
	}
	return fmt.Sprintf("%s (exit code %d): %s", e.Err, e.ExitCode, detail)
}

func (e *GatewayError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// UnparseableOutputError carries the raw text that could not be decoded.
type UnparseableOutputError struct {
	Raw    string
	Reason string
}

func (e *UnparseableOutputError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s (%s): %q", ErrUnparseableOutput, e.Reason, e.Raw)
	}
	return fmt.Sprintf("%s: %q", ErrUnparseableOutput, e.Raw)
}

func (e *UnparseableOutputError) Unwrap() error {
	return ErrUnparseableOutput
}

// PrefixLengthError reports a CIDR prefix length outside [0,32].
type PrefixLengthError struct {
	Prefix int
}

func (e *PrefixLengthError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidPrefixLength, e.Prefix)
}

func (e *PrefixLengthError) Unwrap() error {
	return ErrInvalidPrefixLength
}

// ApplyStepError reports the step of the apply sequence that failed, the
// command that was executed and the OS error text.
type ApplyStepError struct {
	Step    ApplyStep
	Command string
	Detail  string
	Err     error
}

func (e *ApplyStepError) Error() string {
	return fmt.Sprintf("%s step failed: %s\ncommand: %s", e.Step, e.Detail, e.Command)
}

func (e *ApplyStepError) Unwrap() error {
	return e.Err
}
