package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:           "golang-ipv4cfg",
	Short:         "golang-ipv4cfg inspects and reconfigures the IPv4 settings of network adapters",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (YAML)")
}
