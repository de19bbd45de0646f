package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veridoc-labs/veridoc-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol integration",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose documents and validations over MCP",
	Long: `Start an MCP server so AI assistants can list processed invoices,
query field coverage and save validation snapshots.

The default transport is stdio JSON-RPC, which suits assistant
configurations that launch the binary directly:

  veridoc mcp serve

Pass --port to serve streamable HTTP instead, for the MCP Inspector
or remote clients:

  veridoc mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Session:    sessionService,
		Validation: validationService,
		Ledger:     ledgerService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
