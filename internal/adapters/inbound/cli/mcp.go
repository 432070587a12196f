package cli

import (
	mcpadapter "github.com/terravet/terravet/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the terravet MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var treePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start terravet MCP server (stdio)",
		Long:  "Start the terravet MCP server using stdio transport. This allows AI coding assistants to validate Terraform trees and inspect the registered checks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if treePath == "" {
				treePath = "."
			}
			s := mcpadapter.NewTerravetMCPServer(treePath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&treePath, "path", "", "Terraform tree path (defaults to current working directory)")

	return cmd
}
