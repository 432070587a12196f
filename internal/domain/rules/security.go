package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/terravet/terravet/internal/domain"
)

// wildcardLookback bounds how far back the permissive-rule heuristic
// searches for an "allow" marker before the flagged line.
const wildcardLookback = 200

var (
	secretAssignRe  = regexp.MustCompile(`(?i)(password|secret|key)\s*=\s*"[^$]`)
	varOrDataRefRe  = regexp.MustCompile(`var\.|data\.`)
	sensitiveNameRe = regexp.MustCompile(`(?is)variable\s+"([^"]*(?:password|secret|key)[^"]*)".*?\}`)
)

// CheckSecurity applies three heuristics: secret-looking assignments
// to string literals (references through var. or data. are exempt),
// security rules admitting traffic from any source inside an allow
// block, and secret-named variables missing a sensitive = true marker.
func CheckSecurity(src *domain.SourceSet) []domain.Result {
	var results []domain.Result

	for _, f := range src.Files {
		offset := 0
		for i, line := range f.Lines {
			if secretAssignRe.MatchString(line) && !varOrDataRefRe.MatchString(line) {
				results = append(results, domain.Result{
					CheckName: "Hardcoded Secret",
					Passed:    false,
					Message:   "Possible hardcoded secret detected - Use variables or Key Vault",
					FilePath:  f.Path,
					Line:      i + 1,
				})
			}

			if strings.Contains(line, "source_address_prefix") && strings.Contains(line, `"*"`) {
				if windowContainsAllow(f.Content, offset) {
					results = append(results, domain.Result{
						CheckName: "Overly Permissive Security Rule",
						Passed:    false,
						Message:   "Security rule allows traffic from anywhere (*) - Use specific CIDR blocks",
						FilePath:  f.Path,
						Line:      i + 1,
					})
				}
			}

			offset += len(line) + 1
		}
	}

	results = append(results, checkSensitiveVariables(src)...)
	return results
}

// windowContainsAllow inspects the bytes immediately before lineStart
// for an "allow" marker. Deny rules with wildcard sources are not
// flagged.
func windowContainsAllow(content string, lineStart int) bool {
	start := lineStart - wildcardLookback
	if start < 0 {
		start = 0
	}
	window := strings.ToLower(content[start:lineStart])
	return strings.Contains(window, "allow")
}

// checkSensitiveVariables emits one pass/fail result per secret-named
// variable in the root variables file, passing only when the block
// (header to first closing brace) carries a true-valued sensitive
// marker.
func checkSensitiveVariables(src *domain.SourceSet) []domain.Result {
	vf := src.RootFile(variablesFile)
	if vf == nil {
		return nil
	}

	var results []domain.Result
	for _, m := range sensitiveNameRe.FindAllStringSubmatch(vf.Content, -1) {
		name := m[1]
		block := variableBlock(vf.Content, name)
		if block == "" {
			continue
		}

		marked := strings.Contains(block, "sensitive") && strings.Contains(block, "true")
		verdict := "NOT"
		if marked {
			verdict = "is"
		}
		results = append(results, domain.Result{
			CheckName: "Sensitive Variable",
			Passed:    marked,
			Message:   fmt.Sprintf("Variable %q %s marked sensitive", name, verdict),
		})
	}

	return results
}

// variableBlock returns the first declaration block for name, from the
// variable header to the first closing brace. Nested braces are not
// tracked.
func variableBlock(content, name string) string {
	re := regexp.MustCompile(`(?s)variable\s+"` + regexp.QuoteMeta(name) + `".*?\}`)
	return re.FindString(content)
}
