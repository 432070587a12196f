package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terravet/terravet/internal/adapters/outbound/tui"
	"github.com/terravet/terravet/internal/domain"
)

func TestRenderRunVerbose_ShowsEveryResult(t *testing.T) {
	output := tui.RenderRunVerbose(sampleValidationRun())

	assert.Contains(t, output, "Validation Summary")
	assert.Contains(t, output, "Required File: README.md")
	assert.Contains(t, output, "Project documentation found")
	assert.Contains(t, output, "Magic Number")
	assert.Contains(t, output, "main.tf:12")
}

func TestRenderRunVerbose_GroupsSortedByFamily(t *testing.T) {
	output := tui.RenderRunVerbose(sampleValidationRun())

	magic := strings.Index(output, "Magic Number (0/1)")
	required := strings.Index(output, "Required File (1/1)")
	require.Positive(t, magic)
	require.Positive(t, required)
	assert.Less(t, magic, required)
}

func TestRenderRunVerbose_CleanRun(t *testing.T) {
	results := []domain.Result{
		{CheckName: "Required File: README.md", Passed: true, Message: "Project documentation found"},
		{CheckName: "Constants File", Passed: true, Message: "locals_constants.tf found"},
	}
	run := &domain.Run{
		Root:      "/infra/edge",
		FileCount: 2,
		Results:   results,
		Summary:   domain.Summarize(results),
	}

	output := tui.RenderRunVerbose(run)
	assert.Contains(t, output, "Constants File (1/1)")
	assert.Contains(t, output, "All checks passed.")
	assert.NotContains(t, output, "✗")
}
