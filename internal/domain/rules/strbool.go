package rules

import (
	"regexp"

	"github.com/terravet/terravet/internal/domain"
)

var (
	yesNoSetRe     = regexp.MustCompile(`contains\(\s*\[\s*"yes"\s*,\s*"no"\s*\]`)
	trueFalseSetRe = regexp.MustCompile(`contains\(\s*\[\s*"true"\s*,\s*"false"\s*\]`)
)

// CheckStringBooleans flags validation expressions whose allowed-value
// set is a literal "yes"/"no" or "true"/"false" pair; such variables
// should be type = bool. Absence of the pattern is not reported.
func CheckStringBooleans(src *domain.SourceSet) []domain.Result {
	var results []domain.Result

	for _, f := range src.Files {
		for i, line := range f.Lines {
			if yesNoSetRe.MatchString(line) {
				results = append(results, domain.Result{
					CheckName: "String Boolean",
					Passed:    false,
					Message:   `String boolean detected - Use type = bool instead of "yes"/"no"`,
					FilePath:  f.Path,
					Line:      i + 1,
				})
			}

			if trueFalseSetRe.MatchString(line) {
				results = append(results, domain.Result{
					CheckName: "String Boolean",
					Passed:    false,
					Message:   `String boolean detected - Use type = bool instead of "true"/"false" strings`,
					FilePath:  f.Path,
					Line:      i + 1,
				})
			}
		}
	}

	return results
}
