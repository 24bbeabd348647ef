package config

import "fmt"

// Algorithm selection values.
const (
	AlgorithmEven    = "even"
	AlgorithmMaximal = "maximal"
)

// Output format values.
const (
	FormatTable = "table"
	FormatPlain = "plain"
)

// DefaultNameColumn is the header cell that marks the name column in input
// files; cells before it are ignored, cells after it are ranked preferences.
const DefaultNameColumn = "Name"

// Options is the root of a YAML options file for a matching run.
type Options struct {
	// Version of the options schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Algorithm picks the matching algorithm: "even" (default) or "maximal".
	Algorithm string `yaml:"algorithm,omitempty"`

	// NameColumn overrides the header cell that marks the name column.
	NameColumn string `yaml:"name_column,omitempty"`

	// Format picks the output rendering: "table" (default) or "plain".
	Format string `yaml:"format,omitempty"`

	// NoColor disables styled output.
	NoColor bool `yaml:"no_color,omitempty"`
}

// Default returns the options used when no file is given.
func Default() Options {
	var o Options
	applyDefaults(&o)

	return o
}

// applyDefaults fills in default values for unset fields.
func applyDefaults(o *Options) {
	if o.Version == "" {
		o.Version = "1"
	}

	if o.Algorithm == "" {
		o.Algorithm = AlgorithmEven
	}

	if o.NameColumn == "" {
		o.NameColumn = DefaultNameColumn
	}

	if o.Format == "" {
		o.Format = FormatTable
	}
}

// Validate checks that all option values are recognized.
func (o *Options) Validate() error {
	switch o.Algorithm {
	case AlgorithmEven, AlgorithmMaximal:
	default:
		return fmt.Errorf("unknown algorithm %q (want %q or %q)",
			o.Algorithm, AlgorithmEven, AlgorithmMaximal)
	}

	switch o.Format {
	case FormatTable, FormatPlain:
	default:
		return fmt.Errorf("unknown format %q (want %q or %q)",
			o.Format, FormatTable, FormatPlain)
	}

	return nil
}
