package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terravet/terravet/internal/domain"
)

func TestNewSourceFile(t *testing.T) {
	f := domain.NewSourceFile("modules/net/main.tf", "a\nb\n")
	assert.Equal(t, "modules/net/main.tf", f.Path)
	assert.Equal(t, "main.tf", f.Name)
	assert.Equal(t, []string{"a", "b", ""}, f.Lines)

	root := domain.NewSourceFile("variables.tf", "")
	assert.Equal(t, "variables.tf", root.Name)
}

func TestSourceSet_Empty(t *testing.T) {
	assert.True(t, (&domain.SourceSet{}).Empty())

	src := &domain.SourceSet{Files: []domain.SourceFile{domain.NewSourceFile("main.tf", "")}}
	assert.False(t, src.Empty())
}

func TestSourceSet_RootFile(t *testing.T) {
	src := &domain.SourceSet{
		Files: []domain.SourceFile{
			domain.NewSourceFile("modules/net/variables.tf", "nested"),
			domain.NewSourceFile("variables.tf", "root"),
		},
	}

	vf := src.RootFile("variables.tf")
	require.NotNil(t, vf)
	assert.Equal(t, "root", vf.Content)

	assert.Nil(t, src.RootFile("outputs.tf"))
}

func TestSourceSet_HasRootEntry(t *testing.T) {
	src := &domain.SourceSet{RootEntries: map[string]bool{"README.md": true}}
	assert.True(t, src.HasRootEntry("README.md"))
	assert.False(t, src.HasRootEntry("versions.tf"))

	var empty domain.SourceSet
	assert.False(t, empty.HasRootEntry("README.md"))
}
