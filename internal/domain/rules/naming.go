package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/terravet/terravet/internal/domain"
)

const minNameLength = 3

var (
	variableHeaderRe = regexp.MustCompile(`variable\s+"([^"]+)"`)
	resourceHeaderRe = regexp.MustCompile(`resource\s+"[^"]+"\s+"([^"]+)"`)
	upperCharRe      = regexp.MustCompile(`[A-Z]`)
)

// CheckNaming enforces lowercase-with-underscores identifiers:
// variable names (in any variables.tf) must be snake_case and at least
// three characters, resource names (in any file) must be snake_case.
// Only violations are reported.
func CheckNaming(src *domain.SourceSet) []domain.Result {
	var results []domain.Result

	for _, f := range src.Files {
		if f.Name != variablesFile {
			continue
		}

		for _, m := range variableHeaderRe.FindAllStringSubmatch(f.Content, -1) {
			name := m[1]

			if upperCharRe.MatchString(name) {
				results = append(results, domain.Result{
					CheckName: "Variable Naming",
					Passed:    false,
					Message:   notSnakeCaseMessage("Variable", name),
					FilePath:  f.Path,
				})
			}

			if len(name) < minNameLength {
				results = append(results, domain.Result{
					CheckName: "Variable Naming",
					Passed:    false,
					Message:   fmt.Sprintf("Variable %q too short (< %d chars)", name, minNameLength),
					FilePath:  f.Path,
				})
			}
		}
	}

	for _, f := range src.Files {
		for _, m := range resourceHeaderRe.FindAllStringSubmatch(f.Content, -1) {
			name := m[1]
			if upperCharRe.MatchString(name) {
				results = append(results, domain.Result{
					CheckName: "Resource Naming",
					Passed:    false,
					Message:   notSnakeCaseMessage("Resource", name),
					FilePath:  f.Path,
				})
			}
		}
	}

	return results
}

// notSnakeCaseMessage names the violation and, when a clean rewrite
// exists, suggests it.
func notSnakeCaseMessage(kind, name string) string {
	msg := fmt.Sprintf("%s %q not in snake_case", kind, name)
	if s := snakeCase(name); s != "" && s != name {
		msg += fmt.Sprintf(" - consider %q", s)
	}
	return msg
}

// snakeCase rewrites a camelCase or PascalCase identifier as
// lowercase-with-underscores.
func snakeCase(name string) string {
	var words []string
	for _, part := range camelcase.Split(name) {
		part = strings.Trim(part, "_")
		if part == "" {
			continue
		}
		words = append(words, strings.ToLower(part))
	}
	return strings.Join(words, "_")
}
