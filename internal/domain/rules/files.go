package rules

import (
	"fmt"

	"github.com/terravet/terravet/internal/domain"
)

// requiredFiles lists the conventional root files every tree must
// carry, in reporting order.
var requiredFiles = []struct {
	name string
	desc string
}{
	{readmeFile, "Project documentation"},
	{variablesFile, "Variable declarations"},
	{outputsFile, "Output definitions"},
	{"versions.tf", "Provider versions (or provider.tf)"},
	{".gitignore", "Git exclusions"},
}

// CheckRequiredFiles emits one pass/fail result per required root file,
// accepting provider.tf in place of versions.tf, plus one result for
// the constants file.
func CheckRequiredFiles(src *domain.SourceSet) []domain.Result {
	results := make([]domain.Result, 0, len(requiredFiles)+1)

	for _, rf := range requiredFiles {
		exists := src.HasRootEntry(rf.name)
		if rf.name == "versions.tf" && !exists {
			exists = src.HasRootEntry("provider.tf")
		}

		status := "MISSING"
		if exists {
			status = "found"
		}
		results = append(results, domain.Result{
			CheckName: fmt.Sprintf("Required File: %s", rf.name),
			Passed:    exists,
			Message:   fmt.Sprintf("%s %s", rf.desc, status),
		})
	}

	hasConstants := src.HasRootEntry(constantsFile)
	msg := constantsFile + " found"
	if !hasConstants {
		msg = constantsFile + " MISSING - magic numbers may be present"
	}
	results = append(results, domain.Result{
		CheckName: "Constants File",
		Passed:    hasConstants,
		Message:   msg,
	})

	return results
}
