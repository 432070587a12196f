package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/terravet/terravet/internal/domain"
)

// MarkdownWriter implements domain.ReportWriter: one markdown document
// per run, grouped by check family.
type MarkdownWriter struct{}

func New() *MarkdownWriter { return &MarkdownWriter{} }

// Write renders run and persists it at path. The report is written
// even for failed runs; it carries whatever results were collected.
func (w *MarkdownWriter) Write(path string, run *domain.Run) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(Render(run)), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Render produces the markdown document for a run: header, summary
// block, then one subsection per check family (sorted by name, results
// in encounter order).
func Render(run *domain.Run) string {
	var b strings.Builder

	b.WriteString("# IaC Validation Report\n\n")
	fmt.Fprintf(&b, "**Path**: %s  \n", run.Root)
	fmt.Fprintf(&b, "**Date**: %s  \n", run.Timestamp.Format("2006-01-02 15:04:05"))
	if run.CommitHash != "" {
		fmt.Fprintf(&b, "**Commit**: %s  \n", run.CommitHash)
	}
	fmt.Fprintf(&b, "**Files**: %d (%s)\n", run.FileCount, humanize.Bytes(uint64(run.TotalSize)))

	b.WriteString("\n## Summary\n\n")
	fmt.Fprintf(&b, "- **Total Checks**: %d\n", run.Summary.Total)
	fmt.Fprintf(&b, "- **Passed**: %d ✅\n", run.Summary.Passed)
	fmt.Fprintf(&b, "- **Failed**: %d ❌\n", run.Summary.Failed)
	fmt.Fprintf(&b, "- **Pass Rate**: %.1f%%\n", run.Summary.PassRate())

	b.WriteString("\n## Results\n\n")
	for _, group := range domain.GroupResults(run.Results) {
		fmt.Fprintf(&b, "\n### %s\n\n", group.Family)
		for _, r := range group.Results {
			status := "❌"
			if r.Passed {
				status = "✅"
			}
			location := ""
			if loc := r.Location(); loc != "" {
				location = fmt.Sprintf(" `%s`", loc)
			}
			fmt.Fprintf(&b, "%s **%s**%s  \n%s\n\n", status, r.CheckName, location, r.Message)
		}
	}

	return b.String()
}
