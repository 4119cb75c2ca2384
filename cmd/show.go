package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang-ipv4cfg/internal/adapter/infrastructure/file"
	"golang-ipv4cfg/internal/pkg/profile"
	"golang-ipv4cfg/internal/port"
	"golang-ipv4cfg/internal/types"

	"github.com/spf13/cobra"
)

var (
	showJSON      bool
	showSave      string
	showOverwrite bool
)

var showCmd = &cobra.Command{
	Use:   "show ADAPTER",
	Short: "Show the current IPv4 configuration of an adapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		manager, err := createAdapterConfigurationManager(cfg)
		if err != nil {
			return err
		}

		return runShow(cmd, manager, profile.NewStore(file.NewManagerAdapter()), args[0], cmd.OutOrStdout())
	},
}

func runShow(cmd *cobra.Command, manager port.AdapterConfigurationManager, store *profile.Store, adapter string, out io.Writer) error {
	current, err := manager.ReadConfig(cmd.Context(), adapter)
	if err != nil {
		return err
	}

	if showSave != "" {
		if err := store.Save(showSave, *current, showOverwrite); err != nil {
			return err
		}
	}

	if showJSON {
		return writeJSON(out, current)
	}
	return printConfig(out, current)
}

func printConfig(out io.Writer, cfg *types.Ipv4Configuration) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Adapter:\t%s\n", cfg.Adapter)
	fmt.Fprintf(w, "IP address:\t%s\n", cfg.Address)
	fmt.Fprintf(w, "Subnet mask:\t%s\n", cfg.Mask)
	fmt.Fprintf(w, "Gateway:\t%s\n", orNone(cfg.Gateway))
	fmt.Fprintf(w, "Primary DNS:\t%s\n", orNone(cfg.DNS1))
	fmt.Fprintf(w, "Secondary DNS:\t%s\n", orNone(cfg.DNS2))
	return w.Flush()
}

func orNone(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print JSON instead of a table")
	showCmd.Flags().StringVar(&showSave, "save", "", "Also save the configuration as a YAML profile")
	showCmd.Flags().BoolVar(&showOverwrite, "overwrite", false, "Replace an existing profile file")
	rootCmd.AddCommand(showCmd)
}
