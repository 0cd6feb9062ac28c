package lgrep

import (
	"strings"
)

// normalizeLineEndings replaces Windows CRLF pairs with a bare LF. A lone CR
// is left alone; it is line content, not a terminator.
func normalizeLineEndings(content string) string {
	return strings.ReplaceAll(content, "\r\n", "\n")
}

// SplitLines splits a string into lines, normalizing line endings.
// A terminator at the very end of the content does not produce a trailing
// empty line, and empty content has no lines at all.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(normalizeLineEndings(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
