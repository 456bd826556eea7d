// Package cmd is the storefront CLI. Commands register themselves on rootCmd from init();
// extension packages use Register.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront catalog, listing and cart backend",
}

// Execute applies registered commands and runs the CLI.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// ExecuteServe runs the serve command with the process flags (the server binary).
func ExecuteServe() {
	Apply()
	rootCmd.SetArgs(append([]string{serveCmd.Name()}, os.Args[1:]...))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
