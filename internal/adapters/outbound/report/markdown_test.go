package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terravet/terravet/internal/adapters/outbound/report"
	"github.com/terravet/terravet/internal/domain"
)

func sampleRun() *domain.Run {
	results := []domain.Result{
		{CheckName: "Required File: README.md", Passed: true, Message: "Project documentation found"},
		{CheckName: "Magic Number", Passed: false, Message: "Port number hardcoded: port = 8080 - Should be in locals_constants.tf", FilePath: "main.tf", Line: 12},
		{CheckName: "Required File: outputs.tf", Passed: false, Message: "Output definitions MISSING"},
	}
	return &domain.Run{
		Root:      "/infra/edge",
		Timestamp: time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC),
		Strict:    false,
		FileCount: 3,
		TotalSize: 512,
		Results:   results,
		Summary:   domain.Summarize(results),
	}
}

func TestRender_Header(t *testing.T) {
	out := report.Render(sampleRun())

	assert.True(t, strings.HasPrefix(out, "# IaC Validation Report\n"))
	assert.Contains(t, out, "**Path**: /infra/edge")
	assert.Contains(t, out, "**Date**: 2026-08-25 10:30:00")
	assert.Contains(t, out, "**Files**: 3 (512 B)")
	assert.NotContains(t, out, "**Commit**")
}

func TestRender_CommitLineWhenKnown(t *testing.T) {
	run := sampleRun()
	run.CommitHash = "abc1234"

	assert.Contains(t, report.Render(run), "**Commit**: abc1234")
}

func TestRender_Summary(t *testing.T) {
	out := report.Render(sampleRun())

	assert.Contains(t, out, "- **Total Checks**: 3")
	assert.Contains(t, out, "- **Passed**: 1 ✅")
	assert.Contains(t, out, "- **Failed**: 2 ❌")
	assert.Contains(t, out, "- **Pass Rate**: 33.3%")
}

func TestRender_GroupsSortedByFamily(t *testing.T) {
	out := report.Render(sampleRun())

	magic := strings.Index(out, "### Magic Number")
	required := strings.Index(out, "### Required File")
	require.Positive(t, magic)
	require.Positive(t, required)
	assert.Less(t, magic, required)

	assert.Contains(t, out, "❌ **Magic Number** `main.tf:12`")
	assert.Contains(t, out, "✅ **Required File: README.md**")
}

func TestWrite_CreatesNestedDirectories(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "reports", "latest", "validation.md")

	require.NoError(t, report.New().Write(dest, sampleRun()))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# IaC Validation Report")
}
