package cmd

import (
	"github.com/huangsam/typomatch/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the typomatch MCP server",
	Long: `Launch an MCP server over stdio that lets AI agents classify relationships,
list types, blend compatibility and build matrices through standard tools.

Logs go to stderr so stdout stays reserved for the protocol.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, engine, version)
	},
}
