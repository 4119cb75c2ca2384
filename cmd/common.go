package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"golang-ipv4cfg/internal/adapter/infrastructure/shell"
	"golang-ipv4cfg/internal/adapter/netcfg"
	"golang-ipv4cfg/internal/pkg/config"
	"golang-ipv4cfg/internal/pkg/logging"
	"golang-ipv4cfg/internal/pkg/parser"
	"golang-ipv4cfg/internal/port"
)

// loadConfig loads and validates the configuration and initializes logging
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	logging.InitLogger(cfg.Logging)
	if configFlag != "" {
		logging.GetLogger().WithField("config_file", configFlag).Debug("Loaded configuration")
	}
	return cfg, nil
}

// createAdapterConfigurationManager wires the PowerShell gateway into the orchestrator
func createAdapterConfigurationManager(cfg *config.Config) (port.AdapterConfigurationManager, error) {
	decoder, err := parser.NewDecoder(cfg.Shell.Encoding)
	if err != nil {
		return nil, err
	}

	gateway := shell.NewGatewayAdapter(cfg.ShellOptions())

	logging.WithComponent("cli").WithFields(map[string]interface{}{
		"shell":    cfg.Shell.Path,
		"encoding": decoder.Name(),
		"timeout":  cfg.Shell.Timeout.String(),
	}).Debug("Created adapter configuration manager")

	return netcfg.NewManager(gateway, decoder), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
