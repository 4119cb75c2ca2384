//go:build unit

package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatewayError(t *testing.T) {
	t.Run("Launch", func(t *testing.T) {
		cause := errors.New(`exec: "powershell.exe": executable file not found in %PATH%`)
		err := fmt.Errorf("failed to list adapters: %w", &GatewayError{Command: "Get-NetAdapter", Cause: cause, Err: ErrGatewayLaunch})

		assert.ErrorIs(t, err, ErrGatewayLaunch)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, ErrGatewayNonZeroExit)
		assert.Contains(t, err.Error(), "command could not be started")
		assert.Contains(t, err.Error(), "executable file not found")
	})

	t.Run("NonZeroExit", func(t *testing.T) {
		err := &GatewayError{Command: "Get-NetRoute", ExitCode: 1, Stderr: "No matching objects\r\n", Err: ErrGatewayNonZeroExit}

		assert.ErrorIs(t, err, ErrGatewayNonZeroExit)
		assert.Equal(t, "command exited with failure (exit code 1): No matching objects", err.Error())
	})

	t.Run("NonZeroExitWithoutOutput", func(t *testing.T) {
		err := &GatewayError{ExitCode: 5, Err: ErrGatewayNonZeroExit}
		assert.Equal(t, "command exited with failure (exit code 5)", err.Error())
	})
}

func TestUnparseableOutputError(t *testing.T) {
	err := &UnparseableOutputError{Raw: "garbage", Reason: "missing IPAddress"}

	assert.ErrorIs(t, err, ErrUnparseableOutput)
	assert.Equal(t, `unparseable command output (missing IPAddress): "garbage"`, err.Error())
}

func TestPrefixLengthError(t *testing.T) {
	err := &PrefixLengthError{Prefix: 33}

	assert.ErrorIs(t, err, ErrInvalidPrefixLength)
	assert.Equal(t, "invalid prefix length: 33", err.Error())
}

func TestApplyStepError(t *testing.T) {
	err := &ApplyStepError{
		Step:    StepPrimaryDNS,
		Command: "& netsh interface ip set dns 'name=Eth0' static '8.8.8.8'; exit $LASTEXITCODE",
		Detail:  "The configured DNS server is incorrect or does not exist.",
		Err:     &GatewayError{ExitCode: 1, Err: ErrGatewayNonZeroExit},
	}

	assert.ErrorIs(t, err, ErrGatewayNonZeroExit)
	assert.Equal(t,
		"PrimaryDns step failed: The configured DNS server is incorrect or does not exist.\n"+
			"command: & netsh interface ip set dns 'name=Eth0' static '8.8.8.8'; exit $LASTEXITCODE",
		err.Error())
}
