// Package cmd implements the CLI commands for inventory-tracker.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "inventory-tracker",
	Short: "Track whether recommended products can still be bought",
	Long: "A service that polls partner stores for product availability and price, " +
		"keeps per-product inventory state, scores purchaseability, and suggests " +
		"alternatives for products that cannot be bought.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(openapiCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
