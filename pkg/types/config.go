// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// Default I/O locations used when no explicit path is given.
const (
	DefaultInputPath  = "tokens.txt"
	DefaultOutputPath = "rt_tokens.txt"
)

// OutputFormat selects how the unique token list is written to the output file.
type OutputFormat string

const (
	// FormatText writes one token per line with a trailing newline.
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat validates s and returns the matching OutputFormat.
// An empty string selects FormatText.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML, FormatJSON:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unsupported format %q: use text, yaml, or json", s)
	}
}

// CollectConfig holds the settings for one file-mode extraction run.
type CollectConfig struct {
	// InputPath is the text file to scan (default tokens.txt).
	InputPath string `json:"input" yaml:"input"`

	// OutputPath is overwritten with the unique tokens (default rt_tokens.txt).
	OutputPath string `json:"output" yaml:"output"`

	// Format selects the output file layout: text, yaml, or json.
	Format OutputFormat `json:"format" yaml:"format"`
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c CollectConfig) WithDefaults() CollectConfig {
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	return c
}
