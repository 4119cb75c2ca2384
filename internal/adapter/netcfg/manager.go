package netcfg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang-ipv4cfg/internal/pkg/command"
	"golang-ipv4cfg/internal/pkg/logging"
	"golang-ipv4cfg/internal/pkg/parser"
	"golang-ipv4cfg/internal/pkg/subnet"
	"golang-ipv4cfg/internal/pkg/validate"
	"golang-ipv4cfg/internal/port"
	"golang-ipv4cfg/internal/types"

	"github.com/sirupsen/logrus"
)

const (
	componentName = "netcfg"

	// secondaryDNSIndex is the netsh priority index of the second DNS server.
	secondaryDNSIndex = 2

	appliedMessage = "IPv4 configuration applied"
)

// Manager is the adapter configuration orchestrator that implements the AdapterConfigurationManager port.
// Each operation issues its gateway calls strictly in sequence and keeps no state between calls.
type Manager struct {
	gateway port.CommandGateway
	decoder *parser.Decoder
}

// Ensure Manager implements the AdapterConfigurationManager port
var _ port.AdapterConfigurationManager = (*Manager)(nil)

// NewManager creates a new orchestrator. A nil decoder means UTF-8.
func NewManager(gateway port.CommandGateway, decoder *parser.Decoder) *Manager {
	if decoder == nil {
		decoder = parser.UTF8()
	}
	return &Manager{
		gateway: gateway,
		decoder: decoder,
	}
}

// ListAdapters enumerates the host's adapters with a single structured query.
func (m *Manager) ListAdapters(ctx context.Context) ([]types.AdapterSummary, error) {
	logger := logging.WithComponent(componentName)

	stdout, err := m.query(ctx, command.ListAdapters())
	if err != nil {
		return nil, fmt.Errorf("failed to list adapters: %w", err)
	}

	adapters, err := parser.Adapters(stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to list adapters: %w", err)
	}

	logger.WithField("count", len(adapters)).Debug("Enumerated adapters")
	return adapters, nil
}

// ReadConfig reads the live IPv4 configuration of an adapter.
// Address and mask are mandatory; gateway and DNS lookups degrade to empty values on failure.
func (m *Manager) ReadConfig(ctx context.Context, adapter string) (*types.Ipv4Configuration, error) {
	adapter = strings.TrimSpace(adapter)
	if adapter == "" {
		return nil, types.ErrMissingAdapter
	}
	logger := logging.WithComponentAndAdapter(componentName, adapter)

	stdout, err := m.query(ctx, command.AddressQuery(adapter))
	if err != nil {
		return nil, fmt.Errorf("failed to read IPv4 address: %w", err)
	}

	addr, err := parser.Address(stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to read IPv4 address: %w", err)
	}

	mask, err := subnet.PrefixToMask(addr.PrefixLength)
	if err != nil {
		return nil, fmt.Errorf("failed to read IPv4 address: %w", err)
	}

	cfg := &types.Ipv4Configuration{
		Adapter: adapter,
		Address: addr.Address,
		Mask:    mask,
	}

	if hops, err := m.queryLines(ctx, command.DefaultRouteQuery(adapter)); err != nil {
		logger.WithError(err).Warn("Default gateway unavailable, leaving it empty")
	} else if len(hops) > 0 {
		cfg.Gateway = hops[0]
	}

	if servers, err := m.queryLines(ctx, command.DNSQuery(adapter)); err != nil {
		logger.WithError(err).Warn("DNS servers unavailable, leaving them empty")
	} else {
		if len(servers) > 0 {
			cfg.DNS1 = servers[0]
		}
		if len(servers) > 1 {
			cfg.DNS2 = servers[1]
		}
	}

	logger.WithFields(logrus.Fields{
		"ip":      cfg.Address,
		"netmask": cfg.Mask,
		"gateway": cfg.Gateway,
	}).Debug("Read IPv4 configuration")

	return cfg, nil
}

// ApplyConfig validates desired and applies it: address (with gateway when set),
// then primary DNS, then secondary DNS. The first failing step ends the
// sequence; earlier steps stay applied.
func (m *Manager) ApplyConfig(ctx context.Context, desired types.Ipv4Configuration) (*types.Confirmation, error) {
	cfg := validate.Normalize(desired)
	if err := validate.Config(cfg); err != nil {
		return nil, err
	}

	logger := logging.WithComponentAndAdapter(componentName, cfg.Adapter)
	confirmation := &types.Confirmation{Adapter: cfg.Adapter}

	if err := m.applyStep(ctx, types.StepAddress, command.SetAddress(cfg.Adapter, cfg.Address, cfg.Mask, cfg.Gateway)); err != nil {
		return nil, err
	}
	confirmation.Steps = append(confirmation.Steps, types.StepAddress)
	logger.WithFields(logrus.Fields{
		"ip":      cfg.Address,
		"netmask": cfg.Mask,
		"gateway": cfg.Gateway,
	}).Info("Address configured")

	if cfg.DNS1 != "" {
		if err := m.applyStep(ctx, types.StepPrimaryDNS, command.SetPrimaryDNS(cfg.Adapter, cfg.DNS1)); err != nil {
			logger.Warn("Address remains applied after DNS failure")
			return nil, err
		}
		confirmation.Steps = append(confirmation.Steps, types.StepPrimaryDNS)
		logger.WithField("dns1", cfg.DNS1).Info("Primary DNS configured")

		if cfg.DNS2 != "" {
			if err := m.applyStep(ctx, types.StepSecondaryDNS, command.AddDNS(cfg.Adapter, cfg.DNS2, secondaryDNSIndex)); err != nil {
				logger.Warn("Address and primary DNS remain applied after secondary DNS failure")
				return nil, err
			}
			confirmation.Steps = append(confirmation.Steps, types.StepSecondaryDNS)
			logger.WithField("dns2", cfg.DNS2).Info("Secondary DNS configured")
		}
	} else if cfg.DNS2 != "" {
		logger.WithField("dns2", cfg.DNS2).Warn("Secondary DNS ignored without a primary DNS")
	}

	confirmation.Message = appliedMessage
	return confirmation, nil
}

// applyStep runs one mutation command and tags any failure with its step.
func (m *Manager) applyStep(ctx context.Context, step types.ApplyStep, cmd string) error {
	logging.WithComponent(componentName).WithField("step", step).Debug("Applying step")

	if _, err := m.run(ctx, cmd); err != nil {
		return &types.ApplyStepError{
			Step:    step,
			Command: cmd,
			Detail:  detail(err),
			Err:     err,
		}
	}
	return nil
}

// query runs a read command and returns its decoded stdout.
func (m *Manager) query(ctx context.Context, cmd string) (string, error) {
	result, err := m.run(ctx, cmd)
	if err != nil {
		return "", err
	}
	return m.decoder.Text(result.Stdout), nil
}

func (m *Manager) queryLines(ctx context.Context, cmd string) ([]string, error) {
	stdout, err := m.query(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return parser.Lines(stdout), nil
}

// run executes cmd and turns a non-zero exit into a GatewayError.
// The error text is stderr, or stdout when stderr is empty.
func (m *Manager) run(ctx context.Context, cmd string) (*types.CommandResult, error) {
	result, err := m.gateway.Run(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if result.Success {
		return result, nil
	}

	output := strings.TrimSpace(m.decoder.Text(result.Stderr))
	if output == "" {
		output = strings.TrimSpace(m.decoder.Text(result.Stdout))
	}
	return nil, &types.GatewayError{
		Command:  cmd,
		ExitCode: result.ExitCode,
		Stderr:   output,
		Err:      types.ErrGatewayNonZeroExit,
	}
}

func detail(err error) string {
	var gatewayErr *types.GatewayError
	if errors.As(err, &gatewayErr) && gatewayErr.Stderr != "" {
		return gatewayErr.Stderr
	}
	return err.Error()
}
