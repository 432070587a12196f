package rules

import (
	"fmt"
	"strings"

	"github.com/terravet/terravet/internal/domain"
)

// readmeSections are the keywords a README must mention, checked
// case-insensitively against the whole document.
var readmeSections = []struct {
	keyword string
	desc    string
}{
	{"prerequisites", "Prerequisites section"},
	{"quick start", "Quick Start or Getting Started section"},
	{"configuration", "Configuration section"},
}

// CheckDocumentation requires a root README.md; when it is missing the
// family reports that single failure and stops. Otherwise it emits one
// pass/fail result per required section plus one for the example
// tfvars file.
func CheckDocumentation(src *domain.SourceSet) []domain.Result {
	if !src.HasRootEntry(readmeFile) {
		return []domain.Result{{
			CheckName: readmeFile,
			Passed:    false,
			Message:   readmeFile + " not found",
		}}
	}

	content := strings.ToLower(src.Readme)
	results := make([]domain.Result, 0, len(readmeSections)+1)

	for _, sec := range readmeSections {
		found := strings.Contains(content, sec.keyword)
		msg := sec.desc + " found"
		if !found {
			msg = sec.desc + " MISSING in " + readmeFile
		}
		results = append(results, domain.Result{
			CheckName: fmt.Sprintf("README: %s", sec.desc),
			Passed:    found,
			Message:   msg,
		})
	}

	hasExample := src.HasRootEntry(exampleFile)
	status := "MISSING"
	if hasExample {
		status = "found"
	}
	results = append(results, domain.Result{
		CheckName: "Example Configuration",
		Passed:    hasExample,
		Message:   fmt.Sprintf("%s %s", exampleFile, status),
	})

	return results
}
