package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/terravet/terravet/internal/domain/rules"
)

// registerResources registers all terravet MCP resources on the given server.
func registerResources(s *server.MCPServer, treePath string) {
	// 1. terravet://run - current validation run
	s.AddResource(
		mcplib.NewResource(
			"terravet://run",
			"Validation Run",
			mcplib.WithResourceDescription("Current validation run for the tree"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRunResource(treePath),
	)

	// 2. terravet://rules - registered checks
	s.AddResource(
		mcplib.NewResource(
			"terravet://rules",
			"Registered Checks",
			mcplib.WithResourceDescription("The registered checks in execution order"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(),
	)
}

func handleRunResource(treePath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		run, err := runValidation(treePath, false)
		if err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}

		data, err := json.MarshalIndent(run, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling run: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "terravet://run",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleRulesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(rules.Registry(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling checks: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "terravet://rules",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
