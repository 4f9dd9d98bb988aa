package persona

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a persona spec from a YAML file and builds a Profile from it.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read persona file: %w", err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse persona file: %w", err)
	}

	return New(spec)
}
