package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/terravet/terravet/internal/domain"
)

func TestConfig_DefaultIsValid(t *testing.T) {
	assert.NoError(t, domain.DefaultConfig().Validate())
}

func TestConfig_ValidateExcludePaths(t *testing.T) {
	valid := domain.Config{ExcludePaths: []string{"examples", "sandbox"}}
	assert.NoError(t, valid.Validate())

	blank := domain.Config{ExcludePaths: []string{"  "}}
	assert.ErrorContains(t, blank.Validate(), "must not be empty")

	nested := domain.Config{ExcludePaths: []string{"modules/legacy"}}
	assert.ErrorContains(t, nested.Validate(), "bare directory name")
}
