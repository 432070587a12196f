package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewTerravetMCPServer creates a new MCP server with all terravet tools
// and resources registered. The treePath is the root directory of the
// Terraform tree to validate.
func NewTerravetMCPServer(treePath string) *server.MCPServer {
	s := server.NewMCPServer(
		"terravet",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, treePath)
	registerResources(s, treePath)

	return s
}
