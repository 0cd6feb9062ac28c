package lgrep

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText turns raw file bytes into text. The content must be valid UTF-8;
// there is no other encoding and no replacement of bad bytes. A leading UTF-8
// byte order mark is dropped.
func DecodeText(raw []byte) (string, error) {
	valid, _, err := transform.Bytes(encoding.UTF8Validator, raw)
	if err != nil {
		return "", err
	}

	// Input is already valid, so the BOM decoder only strips the mark
	text, err := unicode.UTF8BOM.NewDecoder().Bytes(valid)
	if err != nil {
		return "", fmt.Errorf("failed to strip byte order mark: %w", err)
	}

	return string(text), nil
}
