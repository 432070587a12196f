package tui

import (
	"fmt"
	"strings"

	"github.com/terravet/terravet/internal/domain"
)

const trendMaxRows = 15

// RenderTrend produces a pass-rate bar chart over past runs, most
// recent last. Empty until at least two runs exist; one run has no
// trend to show.
func RenderTrend(entries []domain.RunEntry) string {
	if len(entries) < 2 {
		return ""
	}

	shown := entries
	if len(shown) > trendMaxRows {
		shown = shown[len(shown)-trendMaxRows:]
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Pass-Rate Trend") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	if hidden := len(entries) - len(shown); hidden > 0 {
		b.WriteString("  " + faintStyle.Render(fmt.Sprintf("(%d earlier runs)", hidden)) + "\n")
	}

	for _, e := range shown {
		rate := entryPassRate(e)

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		fmt.Fprintf(&b, "  %s  %s %s\n",
			dimStyle.Render(padRight(date, 10)),
			coloredBar(int(rate), 20),
			rateLabel(rate),
		)
	}

	return b.String()
}

func entryPassRate(e domain.RunEntry) float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Passed) / float64(e.Total) * 100
}
