// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package token finds refresh tokens (values starting with "rt_") in account
// export text such as
//
//	email----pass----sess-xxx----rt_xxx----org-xxx----sk-xxx----app_xxx
//
// Matching rule: the text is split into lines, each line is split on "----",
// and every segment whose whitespace-trimmed value starts with "rt_" is a
// token. The token is the whole trimmed segment, so interior whitespace is
// kept ("rt_a b" yields "rt_a b", not "rt_a"), and a token never spans a
// line break or a "----" delimiter. Characters after the prefix are not
// validated.
package token

import (
	"strings"
	"unicode"
)

const (
	// Prefix marks a refresh token.
	Prefix = "rt_"

	// Delimiter separates the fields of one account record.
	Delimiter = "----"
)

// Extract returns every token in text in order of appearance, duplicates
// included. It returns an empty slice when nothing matches.
func Extract(text string) []string {
	tokens := []string{}
	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		if !strings.Contains(line, Prefix) {
			continue
		}
		for _, seg := range strings.Split(line, Delimiter) {
			seg = strings.TrimFunc(seg, isTrimSpace)
			if strings.HasPrefix(seg, Prefix) {
				tokens = append(tokens, seg)
			}
		}
	}
	return tokens
}

// Dedupe returns tokens with later repeats removed, keeping each value at the
// position of its first occurrence. The input slice is not modified.
func Dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		unique = append(unique, t)
	}
	return unique
}

// isTrimSpace reports whether r is trimmed from segment edges: Unicode white
// space plus the unit separator '\x1f', which the export tooling also strips.
func isTrimSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\x1f'
}

// isLineBreak reports whether r ends a line. The set matches the universal
// newline boundaries of the account export tooling, not just '\n'.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
