package cmd

import (
	"errors"
	"fmt"
	"io"

	"golang-ipv4cfg/internal/adapter/infrastructure/file"
	"golang-ipv4cfg/internal/pkg/config"
	"golang-ipv4cfg/internal/pkg/logging"
	"golang-ipv4cfg/internal/pkg/profile"
	"golang-ipv4cfg/internal/port"
	"golang-ipv4cfg/internal/types"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	applyFlags   types.Ipv4Configuration
	applyProfile string
	applyFile    string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a static IPv4 configuration to an adapter",
	Long: `Apply a static IPv4 configuration to an adapter.

The configuration comes from --profile (config file), --file (YAML profile)
or the individual flags. Individual flags override profile values.

Steps run in order: address (and gateway), primary DNS, secondary DNS.
There is no rollback: when a DNS step fails, the address change stays applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		desired, err := desiredConfig(cmd.Flags(), cfg, profile.NewStore(file.NewManagerAdapter()))
		if err != nil {
			return err
		}

		manager, err := createAdapterConfigurationManager(cfg)
		if err != nil {
			return err
		}

		return runApply(cmd, manager, desired, cmd.OutOrStdout())
	},
}

// desiredConfig resolves the configuration to apply from a profile or file and the individual flags.
func desiredConfig(flags *pflag.FlagSet, cfg *config.Config, store *profile.Store) (types.Ipv4Configuration, error) {
	var desired types.Ipv4Configuration

	switch {
	case applyProfile != "":
		p, exists := cfg.GetProfile(applyProfile)
		if !exists {
			return desired, fmt.Errorf("profile %s not found in config", applyProfile)
		}
		desired = p.Desired()
	case applyFile != "":
		loaded, err := store.Load(applyFile)
		if err != nil {
			return desired, err
		}
		desired = loaded
	}

	overrides := map[string]*string{
		"adapter": &desired.Adapter,
		"ip":      &desired.Address,
		"netmask": &desired.Mask,
		"gateway": &desired.Gateway,
		"dns1":    &desired.DNS1,
		"dns2":    &desired.DNS2,
	}
	values := map[string]string{
		"adapter": applyFlags.Adapter,
		"ip":      applyFlags.Address,
		"netmask": applyFlags.Mask,
		"gateway": applyFlags.Gateway,
		"dns1":    applyFlags.DNS1,
		"dns2":    applyFlags.DNS2,
	}
	for name, target := range overrides {
		if flags.Changed(name) {
			*target = values[name]
		}
	}

	return desired, nil
}

func runApply(cmd *cobra.Command, manager port.AdapterConfigurationManager, desired types.Ipv4Configuration, out io.Writer) error {
	logger := logging.WithComponentAndAdapter("cli", desired.Adapter)

	confirmation, err := manager.ApplyConfig(cmd.Context(), desired)
	if err != nil {
		var stepErr *types.ApplyStepError
		if errors.As(err, &stepErr) {
			logger.WithFields(logrus.Fields{
				"step":   stepErr.Step,
				"detail": stepErr.Detail,
			}).Error("Failed to apply IPv4 configuration")
		} else {
			logger.WithError(err).Error("Failed to apply IPv4 configuration")
		}
		return err
	}

	fmt.Fprintf(out, "%s to %s (%d steps)\n", confirmation.Message, confirmation.Adapter, len(confirmation.Steps))
	return nil
}

func init() {
	applyCmd.Flags().StringVarP(&applyFlags.Adapter, "adapter", "a", "", "Adapter name (interface alias)")
	applyCmd.Flags().StringVar(&applyFlags.Address, "ip", "", "IPv4 address")
	applyCmd.Flags().StringVar(&applyFlags.Mask, "netmask", "", "Subnet mask")
	applyCmd.Flags().StringVar(&applyFlags.Gateway, "gateway", "", "Default gateway (optional)")
	applyCmd.Flags().StringVar(&applyFlags.DNS1, "dns1", "", "Primary DNS server (optional)")
	applyCmd.Flags().StringVar(&applyFlags.DNS2, "dns2", "", "Secondary DNS server (optional, requires --dns1)")
	applyCmd.Flags().StringVarP(&applyProfile, "profile", "p", "", "Apply a profile from the config file")
	applyCmd.Flags().StringVar(&applyFile, "file", "", "Apply a YAML profile file")
	applyCmd.MarkFlagsMutuallyExclusive("profile", "file")
	rootCmd.AddCommand(applyCmd)
}
