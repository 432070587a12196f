package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/terravet/terravet/internal/domain"
)

var (
	variableBlockRe = regexp.MustCompile(`(?s)variable\s+"([^"]+)".*?\}`)
	defaultAttrRe   = regexp.MustCompile(`default\s*=`)
)

// CheckVariableValidation requires a validation block on every
// variable without a default in the root variables file; defaulted
// variables are exempt. Silent when the file is absent (required-files
// already reports that).
func CheckVariableValidation(src *domain.SourceSet) []domain.Result {
	vf := src.RootFile(variablesFile)
	if vf == nil {
		return nil
	}

	var results []domain.Result
	for _, m := range variableBlockRe.FindAllStringSubmatch(vf.Content, -1) {
		name := m[1]
		block := variableBlock(vf.Content, name)
		if block == "" {
			continue
		}

		hasValidation := strings.Contains(block, "validation")
		hasDefault := defaultAttrRe.MatchString(block)

		if !hasDefault && !hasValidation {
			results = append(results, domain.Result{
				CheckName: "Variable Validation",
				Passed:    false,
				Message:   fmt.Sprintf("Required variable %q lacks validation block", name),
				FilePath:  variablesFile,
			})
		}
	}

	return results
}
