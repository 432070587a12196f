package domain

import (
	"fmt"
	"strings"
)

// Config holds project-level configuration loaded from .terravet.yaml.
// Config can tune discovery but never disables or reorders rule
// families.
type Config struct {
	ExcludePaths []string `yaml:"exclude_paths" json:"exclude_paths,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() Config {
	return Config{}
}

// Validate checks the config for invalid values and returns a
// descriptive error.
func (c Config) Validate() error {
	for _, p := range c.ExcludePaths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("exclude_paths entries must not be empty")
		}
		if strings.ContainsAny(p, `/\`) {
			return fmt.Errorf("exclude_paths entry %q must be a bare directory name", p)
		}
	}
	return nil
}
