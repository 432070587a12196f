package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/terravet/terravet/internal/domain"
)

// constantRefToken marks a line as sourcing its value from the
// constants file; matches on such lines are suppressed.
const constantRefToken = "local."

// magicPatterns are the known hardcoded-literal shapes. Each pairs a
// lexical pattern with the label used in the failure message.
var magicPatterns = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`\bport\s*=\s*(\d+)`), "Port number"},
	{regexp.MustCompile(`\bzone\s*=\s*"(\d+)"`), "Availability zone"},
	{regexp.MustCompile(`168\.63\.129\.16`), "Azure Wire Server IP"},
	{regexp.MustCompile(`\bdisk_size_gb\s*=\s*(\d+)`), "Disk size"},
}

// CheckMagicNumbers scans every file except the constants file, line
// by line, for the known literal patterns. Full-line comments are
// skipped, and lines referencing a local constant are exempt. Only
// failing results are emitted.
func CheckMagicNumbers(src *domain.SourceSet) []domain.Result {
	var results []domain.Result

	for _, f := range src.Files {
		if f.Name == constantsFile {
			continue
		}

		for i, line := range f.Lines {
			if strings.HasPrefix(strings.TrimSpace(line), "#") {
				continue
			}
			if strings.Contains(line, constantRefToken) {
				continue
			}

			for _, mp := range magicPatterns {
				for _, match := range mp.re.FindAllString(line, -1) {
					results = append(results, domain.Result{
						CheckName: "Magic Number",
						Passed:    false,
						Message:   fmt.Sprintf("%s hardcoded: %s - Should be in %s", mp.label, match, constantsFile),
						FilePath:  f.Path,
						Line:      i + 1,
					})
				}
			}
		}
	}

	return results
}
