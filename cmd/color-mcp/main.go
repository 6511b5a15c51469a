// Command color-mcp is an MCP server for color analysis, contrast checking,
// colorblindness simulation and palette accessibility.
package main

import (
	"os"

	"github.com/ironsheep/color-tools-mcp/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
