// Package cli provides the command-line interface for color-tools-mcp.
//
// Running the binary without a subcommand starts the MCP server on stdio.
// The remaining subcommands run a single color operation and print JSON.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/version"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "color-mcp",
		Short: "MCP server for color analysis and accessibility",
		Long: `color-mcp serves color analysis tools over the Model Context Protocol.

Without a subcommand it speaks JSON-RPC on stdin/stdout and is meant to be
launched by an MCP client. The subcommands run one operation from a shell.

Environment:
  COLOR_MCP_LOG_LEVEL      trace, debug, info, warn or error (default info)
  COLOR_MCP_LOG_JSON       log as JSON lines
  COLOR_MCP_WORKERS        batch parallelism (default GOMAXPROCS)
  COLOR_MCP_OTEL_ENABLED   export metrics over OTLP/gRPC
  COLOR_MCP_OTEL_ENDPOINT  collector address, e.g. localhost:4317
  COLOR_MCP_OTEL_INSECURE  disable TLS to the collector`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.SetVersionTemplate(version.String() + "\n")

	root.AddCommand(
		newServeCmd(),
		newVersionCmd(),
		newAnalyzeCmd(),
		newContrastCmd(),
		newSimulateCmd(),
		newOptimizeCmd(),
		newConvertCmd(),
		newGradientCmd(),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln("Error:", err)
		return 1
	}
	return 0
}

// newLogger builds the stderr logger. Stdout is reserved for protocol output.
func newLogger(cfg *config.Config, w io.Writer) hclog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "color-mcp",
		Level:      cfg.Level(),
		Output:     w,
		JSONFormat: cfg.LogJSON,
	})
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				return printJSON(cmd.OutOrStdout(), version.GetInfo())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}
