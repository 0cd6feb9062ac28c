package lgrep_test

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding"

	"github.com/patrickward/lgrep"
	"github.com/patrickward/lgrep/internal/assert"
)

func TestDecodeText_UTF8(t *testing.T) {
	t.Parallel()
	text, err := lgrep.DecodeText([]byte("héllo wörld\n"))
	assert.Nil(t, err)
	assert.Equal(t, text, "héllo wörld\n")
}

func TestDecodeText_Empty(t *testing.T) {
	t.Parallel()
	text, err := lgrep.DecodeText(nil)
	assert.Nil(t, err)
	assert.Equal(t, text, "")
}

func TestDecodeText_StripsUTF8BOM(t *testing.T) {
	t.Parallel()
	text, err := lgrep.DecodeText([]byte("\xEF\xBB\xBFapple\n"))
	assert.Nil(t, err)
	assert.Equal(t, text, "apple\n")
}

func TestDecodeText_InvalidUTF8(t *testing.T) {
	t.Parallel()
	_, err := lgrep.DecodeText([]byte("ok\n\xff\xfe\xfd"))
	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, encoding.ErrInvalidUTF8))
}

func TestDecodeText_RejectsUTF16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "lone surrogate", raw: []byte{0xFF, 0xFE, 'a', 0, 0x00, 0xD8, '\n', 0}},
		{name: "odd length", raw: []byte{0xFF, 0xFE, 'a', 0, 'b'}},
		{name: "binary after mark", raw: []byte{0xFF, 0xFE, 0x01, 0x02, 0x03, 0x04, 0x89, 0x50, 0x4E, 0x47, 0x0A, 0x00}},
		{name: "well formed little endian", raw: []byte{0xFF, 0xFE, 'h', 0, 'i', 0, '\n', 0}},
		{name: "well formed big endian", raw: []byte{0xFE, 0xFF, 0, 'h', 0, 'i', 0, '\n'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := lgrep.DecodeText(tt.raw)
			assert.True(t, errors.Is(err, encoding.ErrInvalidUTF8))
			assert.Equal(t, text, "")
		})
	}
}
