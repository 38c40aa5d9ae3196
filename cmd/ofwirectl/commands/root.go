// Package commands implements the CLI commands for ofwirectl.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ofkit/ofwire/cmd/ofwirectl/cmdutil"
	"github.com/ofkit/ofwire/internal/logger"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ofwirectl",
	Short: "OpenFlow wire header inspector",
	Long: `ofwirectl decodes and crafts OpenFlow message headers.

Use it to check what a controller or switch actually put on the wire:
decode a hex dump, craft a header byte-for-byte, or scan a pcap capture
for OpenFlow traffic.

Use "ofwirectl [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cmdutil.Flags.Output, _ = cmd.Flags().GetString("output")
		cmdutil.Flags.Verbose, _ = cmd.Flags().GetBool("verbose")
		logger.Init(cmdutil.Flags.Verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format (table|json|yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(craftCmd)
	rootCmd.AddCommand(pcapCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("ofwirectl %s (commit %s, built %s)\n", Version, Commit, Date)
	},
}

// Exit prints an error and exits with code 1.
func Exit(format string, args ...any) {
	rootCmd.PrintErrf(format+"\n", args...)
	os.Exit(1)
}
