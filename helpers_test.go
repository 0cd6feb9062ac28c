package lgrep_test

import (
	"testing"

	"github.com/patrickward/lgrep"
	"github.com/patrickward/lgrep/internal/assert"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: nil},
		{name: "single line without terminator", content: "one", want: []string{"one"}},
		{name: "trailing newline", content: "one\ntwo\n", want: []string{"one", "two"}},
		{name: "no trailing newline", content: "one\ntwo", want: []string{"one", "two"}},
		{name: "crlf", content: "one\r\ntwo\r\n", want: []string{"one", "two"}},
		{name: "mixed terminators", content: "one\r\ntwo\nthree", want: []string{"one", "two", "three"}},
		{name: "blank lines kept", content: "one\n\n\ntwo\n", want: []string{"one", "", "", "two"}},
		{name: "only a newline", content: "\n", want: []string{""}},
		{name: "bare cr is content", content: "one\rtwo\n", want: []string{"one\rtwo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, lgrep.SplitLines(tt.content), tt.want)
		})
	}
}
