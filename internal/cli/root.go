// Package cli wires the precheck engine into a command-line tool: a serve
// command for the API server and a check command for one-off evaluation of
// a saved fact file.
package cli

import "github.com/spf13/cobra"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "notice-precheck",
	Short:         "Section 21 notice pre-check engine",
	Long:          "Checks a landlord's tenancy facts against the Section 21 prerequisites and computes the statutory notice dates.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
