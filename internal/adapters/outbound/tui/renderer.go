package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/terravet/terravet/internal/domain"
	"github.com/terravet/terravet/internal/domain/rules"
)

// ── Warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	failTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	ruleNameStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderRun formats a full validation run for the terminal: header
// box, discovery line, summary banner, then every failing result in
// execution order.
func RenderRun(run *domain.Run) string {
	var b strings.Builder
	writeRunHeader(&b, run)

	// ── Failures ──
	failures := domain.Failures(run.Results)
	if len(failures) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Failures") + "\n\n")
		for _, r := range failures {
			renderFailure(&b, r)
		}
	} else {
		b.WriteString("\n  " + passStyle.Render("All checks passed.") + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

// writeRunHeader emits the header box, discovery line and summary
// banner shared by the default and verbose run views.
func writeRunHeader(b *strings.Builder, run *domain.Run) {
	title := headerStyle.Render("terravet")
	subtitle := dimStyle.Render("Terraform structure validation")
	path := lipgloss.NewStyle().Foreground(fg).Render(run.Root)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + path))
	b.WriteString("\n\n")

	if run.FileCount > 0 {
		found := fmt.Sprintf("Found %d Terraform files (%s)", run.FileCount, humanize.Bytes(uint64(run.TotalSize)))
		b.WriteString("  " + dimStyle.Render(found) + "\n\n")
	}

	b.WriteString("  " + separatorLine + "\n")
	b.WriteString("  " + titleStyle.Render("Validation Summary") + "\n")
	b.WriteString("  " + separatorLine + "\n")

	s := run.Summary
	fmt.Fprintf(b, "  %s %d\n", padRight("Total checks", 14), s.Total)
	fmt.Fprintf(b, "  %s %s\n", padRight("Passed", 14), passStyle.Render(fmt.Sprintf("%d", s.Passed)))
	fmt.Fprintf(b, "  %s %s\n", padRight("Failed", 14), failCount(s.Failed))
	fmt.Fprintf(b, "  %s %s %s\n", padRight("Pass rate", 14), coloredBar(int(s.PassRate()), 20), rateLabel(s.PassRate()))
	b.WriteString("  " + separatorLine + "\n")
}

func renderFailure(b *strings.Builder, r domain.Result) {
	tag := failTagStyle.Render("✗")
	if loc := r.Location(); loc != "" {
		fmt.Fprintf(b, "    %s %s  %s\n", tag, r.CheckName, fileStyle.Render(loc))
	} else {
		fmt.Fprintf(b, "    %s %s\n", tag, r.CheckName)
	}
	fmt.Fprintf(b, "      %s\n", dimStyle.Render(r.Message))
}

func failCount(n int) string {
	if n == 0 {
		return passStyle.Render("0")
	}
	return failStyle.Render(fmt.Sprintf("%d", n))
}

func rateLabel(rate float64) string {
	return lipgloss.NewStyle().Bold(true).Foreground(rateColor(rate)).Render(fmt.Sprintf("%.1f%%", rate))
}

func coloredBar(pct, width int) string {
	filled := max(0, min(pct*width/100, width))
	empty := width - filled

	color := rateColor(float64(pct))
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func rateColor(rate float64) lipgloss.Color {
	switch {
	case rate >= 100:
		return success
	case rate >= 75:
		return lipgloss.Color("#A3E635") // lime
	case rate >= 50:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats past run entries for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		verdict := failStyle.Render("✗")
		if e.AllPassed {
			verdict = passStyle.Render("✓")
		}

		counts := fmt.Sprintf("%d/%d", e.Passed, e.Total)
		countsStyled := lipgloss.NewStyle().Foreground(historyColor(e)).Render(counts)

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			countsStyled,
			verdict,
		)

		if i > 0 {
			diff := e.Passed - entries[i-1].Passed
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func historyColor(e domain.RunEntry) lipgloss.Color {
	if e.AllPassed {
		return success
	}
	return danger
}

// RenderRules formats the rule registry for terminal output.
func RenderRules(list []rules.Rule) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Rule Families") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, r := range list {
		fmt.Fprintf(&b, "  %s %s\n", ruleNameStyle.Render(padRight(r.Name, 22)), dimStyle.Render(r.Doc))
	}

	b.WriteString("\n")
	return b.String()
}
