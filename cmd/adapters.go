package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang-ipv4cfg/internal/port"

	"github.com/spf13/cobra"
)

var adaptersJSON bool

var adaptersCmd = &cobra.Command{
	Use:   "adapters",
	Short: "List network adapters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		manager, err := createAdapterConfigurationManager(cfg)
		if err != nil {
			return err
		}

		return runAdapters(cmd, manager, cmd.OutOrStdout())
	},
}

func runAdapters(cmd *cobra.Command, manager port.AdapterConfigurationManager, out io.Writer) error {
	adapters, err := manager.ListAdapters(cmd.Context())
	if err != nil {
		return err
	}

	if adaptersJSON {
		return writeJSON(out, adapters)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tADAPTER")
	for _, adapter := range adapters {
		fmt.Fprintf(w, "%s\t%s\n", adapter.ID, adapter.DisplayLabel)
	}
	return w.Flush()
}

func init() {
	adaptersCmd.Flags().BoolVar(&adaptersJSON, "json", false, "Print JSON instead of a table")
	rootCmd.AddCommand(adaptersCmd)
}
