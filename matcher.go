package lgrep

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Matcher finds the lines of a file that contain a literal pattern
type Matcher struct {
	pattern           string
	encryptionManager *EncryptionManager
}

// MatcherOption for configuring the matcher with functional options pattern
type MatcherOption func(*Matcher)

// WithEncryptionManager sets the identities used to open age-encrypted files
func WithEncryptionManager(em *EncryptionManager) MatcherOption {
	return func(m *Matcher) {
		m.encryptionManager = em
	}
}

// NewMatcher creates a matcher for pattern. An empty pattern matches every line.
func NewMatcher(pattern string, opts ...MatcherOption) *Matcher {
	m := &Matcher{pattern: pattern}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Pattern returns the literal pattern searched for
func (m *Matcher) Pattern() string {
	return m.pattern
}

// MatchLines returns the lines containing the pattern, in their original order
func (m *Matcher) MatchLines(lines []string) []SearchMatch {
	var matches []SearchMatch
	for i, line := range lines {
		if !strings.Contains(line, m.pattern) {
			continue
		}

		matches = append(matches, SearchMatch{
			LineNum: i + 1,
			Line:    line,
		})
	}

	return matches
}

// Search reads the file at path and returns its matching lines. Nothing is
// returned alongside an error; a failed read yields no partial result.
func (m *Matcher) Search(path string) ([]SearchMatch, error) {
	src, err := ReadSource(path, m.encryptionManager)
	if err != nil {
		return nil, err
	}

	return m.MatchLines(src.Lines()), nil
}

// WriteMatches writes each matched line followed by a single newline
func WriteMatches(w io.Writer, matches []SearchMatch) error {
	bw := bufio.NewWriter(w)
	for _, match := range matches {
		if _, err := bw.WriteString(match.Line); err != nil {
			return fmt.Errorf("failed to write match: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write match: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
