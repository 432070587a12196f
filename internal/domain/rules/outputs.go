package rules

import (
	"fmt"
	"regexp"

	"github.com/terravet/terravet/internal/domain"
)

var outputHeaderRe = regexp.MustCompile(`^\s*output\s+"`)

// CheckOutputs requires a root outputs.tf; when it is missing the
// family reports that single failure and stops. Otherwise every output
// declaration found in any other file is flagged as a stray.
func CheckOutputs(src *domain.SourceSet) []domain.Result {
	if !src.HasRootEntry(outputsFile) {
		return []domain.Result{{
			CheckName: "Output Organization",
			Passed:    false,
			Message:   outputsFile + " not found - outputs may be scattered",
		}}
	}

	var results []domain.Result
	for _, f := range src.Files {
		if f.Name == outputsFile {
			continue
		}

		for i, line := range f.Lines {
			if outputHeaderRe.MatchString(line) {
				results = append(results, domain.Result{
					CheckName: "Output Organization",
					Passed:    false,
					Message:   fmt.Sprintf("Output found in %s - should be in %s", f.Name, outputsFile),
					FilePath:  f.Path,
					Line:      i + 1,
				})
			}
		}
	}

	return results
}
