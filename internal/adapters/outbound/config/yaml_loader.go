package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/terravet/terravet/internal/domain"
)

const fileName = ".terravet.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .terravet.yaml
// from the validated tree's root.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .terravet.yaml from rootPath. Returns DefaultConfig when
// the file does not exist; a tree without config is always valid.
func (l *YAMLLoader) Load(rootPath string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(rootPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
