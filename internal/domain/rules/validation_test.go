package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terravet/terravet/internal/domain"
	"github.com/terravet/terravet/internal/domain/rules"
)

func TestCheckVariableValidation_RequiredWithoutValidation(t *testing.T) {
	src := &domain.SourceSet{
		Files: []domain.SourceFile{
			domain.NewSourceFile("variables.tf", `variable "environment" {
  type = string
}
`),
		},
	}

	results := rules.CheckVariableValidation(src)
	require.Len(t, results, 1)
	assert.Equal(t, "Variable Validation", results[0].CheckName)
	assert.Equal(t, `Required variable "environment" lacks validation block`, results[0].Message)
	assert.Equal(t, "variables.tf", results[0].FilePath)
}

func TestCheckVariableValidation_DefaultedVariableExempt(t *testing.T) {
	src := &domain.SourceSet{
		Files: []domain.SourceFile{
			domain.NewSourceFile("variables.tf", `variable "location" {
  type    = string
  default = "westeurope"
}
`),
		},
	}

	assert.Empty(t, rules.CheckVariableValidation(src))
}

func TestCheckVariableValidation_ValidatedVariablePasses(t *testing.T) {
	src := &domain.SourceSet{
		Files: []domain.SourceFile{
			domain.NewSourceFile("variables.tf", `variable "environment" {
  type = string

  validation {
    condition     = contains(["dev", "prod"], var.environment)
    error_message = "environment must be dev or prod."
  }
}
`),
		},
	}

	assert.Empty(t, rules.CheckVariableValidation(src))
}

func TestCheckVariableValidation_RootFileOnly(t *testing.T) {
	src := &domain.SourceSet{
		Files: []domain.SourceFile{
			domain.NewSourceFile("modules/net/variables.tf", `variable "cidr" {
  type = string
}
`),
		},
	}

	assert.Empty(t, rules.CheckVariableValidation(src))
}

func TestCheckVariableValidation_MixedDeclarations(t *testing.T) {
	src := &domain.SourceSet{
		Files: []domain.SourceFile{
			domain.NewSourceFile("variables.tf", `variable "environment" {
  type = string
}

variable "vm_count" {
  type    = number
  default = 2
}

variable "admin_cidr" {
  type = string
}
`),
		},
	}

	results := rules.CheckVariableValidation(src)
	require.Len(t, results, 2)
	assert.Contains(t, results[0].Message, `"environment"`)
	assert.Contains(t, results[1].Message, `"admin_cidr"`)
}
