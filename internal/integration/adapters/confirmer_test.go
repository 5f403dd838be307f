package adapters

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "y confirms", input: "y\n", want: true},
		{name: "uppercase Y confirms", input: "Y\n", want: true},
		{name: "yes confirms", input: "yes\n", want: true},
		{name: "russian da confirms", input: "да\n", want: true},
		{name: "n declines", input: "n\n", want: false},
		{name: "empty line declines", input: "\n", want: false},
		{name: "anything else declines", input: "maybe\n", want: false},
		{name: "eof declines", input: "", want: false},
		{name: "answer without newline", input: "y", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewConfirmer(strings.NewReader(tt.input), &out)

			got := c.Confirm("Снизить цену? (y/n): ")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Снизить цену? (y/n): ", out.String(), "the prompt is printed verbatim")
		})
	}
}
