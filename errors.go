package lgrep

import (
	"errors"
	"fmt"
	"io/fs"
)

// ArgumentError reports a missing or surplus positional argument.
type ArgumentError struct {
	Name       string // Name of the missing argument, e.g. "<path>"
	Unexpected string // Surplus argument value, when Name is empty
}

func (e *ArgumentError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("unexpected argument: %q", e.Unexpected)
	}
	return "missing required argument: " + e.Name
}

// ReadError reports a file that could not be opened or read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	// *fs.PathError already carries the path, report only its cause
	cause := e.Err
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	return fmt.Sprintf("cannot read %s: %v", e.Path, cause)
}

func (e *ReadError) Unwrap() error { return e.Err }

// DecodeError reports file content that could not be turned into text.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s as text: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
