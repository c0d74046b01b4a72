// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source reads the text that tokens are extracted from.
// Decoding is best effort: a byte order mark selects UTF-8 or UTF-16, and
// byte sequences that are not valid UTF-8 are dropped rather than reported.
package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrMissingInput reports that the input file does not exist.
var ErrMissingInput = errors.New("input file does not exist")

// ReadFile reads and decodes the file at path. A path that does not exist
// yields an error wrapping ErrMissingInput.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return "", fmt.Errorf("opening input %s: %w", path, err)
	}
	defer f.Close()

	text, err := Read(f)
	if err != nil {
		return "", fmt.Errorf("reading input %s: %w", path, err)
	}
	return text, nil
}

// Read consumes r until EOF and returns its decoded contents. Only errors
// from r itself are returned.
func Read(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return Decode(raw), nil
}

// Decode converts raw bytes to text. A UTF-16 BOM switches to UTF-16
// decoding; a UTF-8 BOM is stripped. Invalid UTF-8 is dropped.
func Decode(raw []byte) string {
	dec := unicode.BOMOverride(encoding.Nop.NewDecoder())
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		out = raw
	}
	return strings.ToValidUTF8(string(out), "")
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
