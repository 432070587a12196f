package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/terravet/terravet/internal/adapters/outbound/config"
	"github.com/terravet/terravet/internal/adapters/outbound/gitinfo"
	"github.com/terravet/terravet/internal/adapters/outbound/report"
	"github.com/terravet/terravet/internal/adapters/outbound/scanner"
	"github.com/terravet/terravet/internal/application"
	"github.com/terravet/terravet/internal/domain"
	"github.com/terravet/terravet/internal/domain/rules"
)

// registerTools registers all terravet MCP tools on the given server.
func registerTools(s *server.MCPServer, treePath string) {
	// 1. terravet_validate
	s.AddTool(
		mcplib.NewTool("terravet_validate",
			mcplib.WithDescription("Validate a Terraform tree against organizational standards and return the full run as JSON"),
			mcplib.WithString("path", mcplib.Description("Tree to validate (defaults to the server's tree)")),
			mcplib.WithBoolean("strict", mcplib.Description("Record strict mode on the run")),
		),
		handleValidate(treePath),
	)

	// 2. terravet_rules
	s.AddTool(
		mcplib.NewTool("terravet_rules",
			mcplib.WithDescription("List the registered checks in execution order"),
		),
		handleRules(),
	)

	// 3. terravet_report
	s.AddTool(
		mcplib.NewTool("terravet_report",
			mcplib.WithDescription("Validate a Terraform tree and return a markdown report"),
			mcplib.WithString("path", mcplib.Description("Tree to validate (defaults to the server's tree)")),
		),
		handleReport(treePath),
	)
}

// newService creates the validation service on its standard outbound adapters.
func newService() *application.ValidateService {
	return application.NewValidateService(scanner.New(), config.New())
}

// runValidation validates path and attaches the commit hash when the
// tree is a git repository.
func runValidation(path string, strict bool) (*domain.Run, error) {
	run, err := newService().ValidateTree(path, application.Options{Strict: strict})
	if err != nil {
		return nil, err
	}
	if hash, hashErr := gitinfo.New().CommitHash(path); hashErr == nil {
		run.CommitHash = hash
	}
	return run, nil
}

func handleValidate(treePath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		path := treePath
		if p, ok := args["path"].(string); ok && p != "" {
			path = p
		}
		strict, _ := args["strict"].(bool)

		run, err := runValidation(path, strict)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(run)
	}
}

func handleRules() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(rules.Registry())
	}
}

func handleReport(treePath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path := treePath
		if p, ok := request.GetArguments()["path"].(string); ok && p != "" {
			path = p
		}

		run, err := runValidation(path, false)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return textResult(report.Render(run)), nil
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
