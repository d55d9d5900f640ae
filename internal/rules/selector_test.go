package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeSelector(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"button-blue-500", "button-blue-500"},
		{"button-[#fff]", `button-\[\#fff\]`},
		{"button-[rgb(0,_0,_0)]", `button-\[rgb\(0\,_0\,_0\)\]`},
		{"button-[50%]", `button-\[50\%\]`},
		{"1button", `\31 button`},
		{"-1a", `-\31 a`},
		{"-", `\-`},
		{"a\x01b", `a\1 b`},
		{"héllo", "héllo"},
		{"a\x00", "a�"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeSelector(tt.in))
		})
	}
}
