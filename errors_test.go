package lgrep_test

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/patrickward/lgrep"
	"github.com/patrickward/lgrep/internal/assert"
)

func TestArgumentError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, (&lgrep.ArgumentError{Name: "<path>"}).Error(), "missing required argument: <path>")
	assert.Equal(t, (&lgrep.ArgumentError{Unexpected: "x"}).Error(), `unexpected argument: "x"`)
}

func TestReadError_ReportsPathOnce(t *testing.T) {
	t.Parallel()
	_, err := os.Open("missing.txt")
	readErr := &lgrep.ReadError{Path: "missing.txt", Err: err}
	assert.Equal(t, readErr.Error(), "cannot read missing.txt: no such file or directory")
	assert.True(t, errors.Is(readErr, fs.ErrNotExist))
}

func TestDecodeError(t *testing.T) {
	t.Parallel()
	cause := errors.New("bad bytes")
	decodeErr := &lgrep.DecodeError{Path: "a.bin", Err: cause}
	assert.Equal(t, decodeErr.Error(), "cannot decode a.bin as text: bad bytes")
	assert.True(t, errors.Is(decodeErr, cause))
}
