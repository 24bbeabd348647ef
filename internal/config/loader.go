package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML options file from the given path.
func LoadFile(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file %s: %w", path, err)
	}

	o, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return o, nil
}

// Parse parses YAML data into Options.
func Parse(data []byte) (*Options, error) {
	var o Options

	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse options YAML: %w", err)
	}

	applyDefaults(&o)

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &o, nil
}
