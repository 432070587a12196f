package rules

import "github.com/terravet/terravet/internal/domain"

// Well-known file names the conventions are built around.
const (
	constantsFile = "locals_constants.tf"
	variablesFile = "variables.tf"
	outputsFile   = "outputs.tf"
	readmeFile    = "README.md"
	exampleFile   = "terraform.tfvars.example"
)

// CheckFunc is one rule family: a pure function of the discovered
// source set returning its results in a fixed order. Families never
// read each other's output.
type CheckFunc func(src *domain.SourceSet) []domain.Result

// Rule binds a family identifier to its check function.
type Rule struct {
	Name  string    `json:"name"`
	Doc   string    `json:"doc"`
	Check CheckFunc `json:"-"`
}

// Registry returns the rule families in execution order. The order is
// fixed so result sequences stay deterministic; adding a family means
// appending an entry here, nothing else.
func Registry() []Rule {
	return []Rule{
		{
			Name:  "required-files",
			Doc:   "Required root files and the locals_constants.tf constants file are present",
			Check: CheckRequiredFiles,
		},
		{
			Name:  "magic-numbers",
			Doc:   "Well-known literals (ports, zones, disk sizes, reserved IPs) are not hardcoded outside the constants file",
			Check: CheckMagicNumbers,
		},
		{
			Name:  "string-booleans",
			Doc:   `Validation sets of "yes"/"no" or "true"/"false" strings are not used in place of bool`,
			Check: CheckStringBooleans,
		},
		{
			Name:  "naming",
			Doc:   "Variable and resource names are snake_case and long enough to read",
			Check: CheckNaming,
		},
		{
			Name:  "documentation",
			Doc:   "README.md covers prerequisites, quick start and configuration, with an example tfvars file",
			Check: CheckDocumentation,
		},
		{
			Name:  "security",
			Doc:   "No hardcoded secrets, no allow-from-anywhere rules, secret-like variables marked sensitive",
			Check: CheckSecurity,
		},
		{
			Name:  "variable-validation",
			Doc:   "Required variables (no default) declare a validation block",
			Check: CheckVariableValidation,
		},
		{
			Name:  "outputs",
			Doc:   "Output declarations live only in outputs.tf",
			Check: CheckOutputs,
		},
	}
}

// RunAll executes every registered family against src and concatenates
// their result slices in registry order.
func RunAll(src *domain.SourceSet) []domain.Result {
	var results []domain.Result
	for _, rule := range Registry() {
		results = append(results, rule.Check(src)...)
	}
	return results
}
