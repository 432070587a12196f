package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/terravet/terravet/internal/domain"
)

var sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

// RenderRunVerbose formats a validation run with every result shown,
// grouped per check family in the report's order. The default view
// (RenderRun) lists failures only.
func RenderRunVerbose(run *domain.Run) string {
	var b strings.Builder
	writeRunHeader(&b, run)

	for _, group := range domain.GroupResults(run.Results) {
		renderFamilySection(&b, group)
	}

	if run.AllPassed() {
		b.WriteString("\n  " + passStyle.Render("All checks passed.") + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderFamilySection(b *strings.Builder, group domain.ResultGroup) {
	passed := 0
	for _, r := range group.Results {
		if r.Passed {
			passed++
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n",
		sectionHeaderStyle.Render(group.Family),
		dimStyle.Render(fmt.Sprintf("(%d/%d)", passed, len(group.Results))),
	)

	for _, r := range group.Results {
		glyph := passStyle.Render("✓")
		if !r.Passed {
			glyph = failTagStyle.Render("✗")
		}
		line := fmt.Sprintf("    %s %s", glyph, r.CheckName)
		if loc := r.Location(); loc != "" {
			line += "  " + fileStyle.Render(loc)
		}
		b.WriteString(line + "\n")
		b.WriteString("      " + dimStyle.Render(r.Message) + "\n")
	}
}
