package lgrep

// SearchMatch represents a single line match in a file
type SearchMatch struct {
	LineNum int    // The line number in the file (1-based)
	Line    string // The raw line text, terminator stripped
}
