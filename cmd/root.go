// Package cmd implements the gmail-mcp command-line interface.
//
// Commands:
//   - serve: run the MCP gateway (default when no subcommand is given)
//   - version: display version information
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gmail-mcp",
	Short: "MCP server exposing Gmail tools backed by LIAM",
	Long: `gmail-mcp is a Model Context Protocol server that exposes Gmail
operations as tools for AI agents.

All real Gmail API calls, OAuth consent, token refresh and encryption are
performed by the LIAM backend; this process is a stateless gateway that
validates tool parameters, forwards each invocation as one HTTP request,
and relays the backend's JSON response unchanged.`,
	SilenceUsage: true,
}

// version is set by main via SetVersion.
var version = "dev"

// SetVersion sets the version reported by the root command.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the CLI.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gmail-mcp version %s\n" .Version}}`)

	// Running without a subcommand starts the gateway on stdio.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
