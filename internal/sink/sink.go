// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sink writes extracted tokens to an output file or prints them as a
// console report.
package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/rtextract/pkg/types"
)

// Document is the structured form of an output file, used by the yaml and
// json formats. The text format writes only Tokens.
type Document struct {
	RunID     string    `json:"run_id" yaml:"run_id"`
	Source    string    `json:"source" yaml:"source"`
	Found     int       `json:"found" yaml:"found"`
	Unique    int       `json:"unique" yaml:"unique"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Tokens    []string  `json:"tokens" yaml:"tokens"`
}

// Encode renders doc in the given format.
func Encode(format types.OutputFormat, doc Document) ([]byte, error) {
	switch format {
	case types.FormatText, "":
		if len(doc.Tokens) == 0 {
			return []byte{}, nil
		}
		return []byte(strings.Join(doc.Tokens, "\n") + "\n"), nil
	case types.FormatYAML:
		data, err := yaml.Marshal(&doc)
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return data, nil
	case types.FormatJSON:
		data, err := json.MarshalIndent(&doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}

// WriteFile overwrites path with doc rendered in format.
func WriteFile(path string, format types.OutputFormat, doc Document) error {
	data, err := Encode(format, doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing output %s: %w", path, err)
	}
	return nil
}

// PrintReport writes the console report: a count line, a blank line, then one
// token per line. An empty list prints a single "not found" line.
func PrintReport(w io.Writer, tokens []string) {
	if len(tokens) == 0 {
		fmt.Fprintln(w, "No refresh tokens found.")
		return
	}
	fmt.Fprintf(w, "Found %d refresh token(s):\n\n", len(tokens))
	for _, t := range tokens {
		fmt.Fprintln(w, t)
	}
}
