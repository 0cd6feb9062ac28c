package lgrep

import (
	"errors"
	"io"
	"os"
)

var errIsDir = errors.New("is a directory")

// Source is the decoded text of a single file, held in memory
type Source struct {
	Path    string
	content string
}

// ReadSource reads the whole file at path and decodes it as text. Files in
// the age format are decrypted first when em holds a matching identity.
// Failures are reported as *ReadError or *DecodeError.
func ReadSource(path string, em *EncryptionManager) (*Source, error) {
	raw, err := readAll(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	if IsAgeEncrypted(raw) {
		if em == nil || !em.HasIdentities() {
			return nil, &DecodeError{Path: path, Err: errNoIdentity}
		}

		raw, err = em.Decrypt(raw)
		if err != nil {
			return nil, &DecodeError{Path: path, Err: err}
		}
	}

	content, err := DecodeText(raw)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	return &Source{Path: path, content: content}, nil
}

// readAll opens, fully reads and closes a regular file
func readAll(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if stat.IsDir() {
		return nil, errIsDir
	}

	return io.ReadAll(file)
}

// Content returns the decoded text of the source
func (s *Source) Content() string {
	return s.content
}

// Lines returns the source split into lines, terminators stripped
func (s *Source) Lines() []string {
	return SplitLines(s.content)
}
