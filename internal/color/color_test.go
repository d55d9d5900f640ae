package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Color
		wantOK bool
	}{
		{"hex long", "#eb6f92", Color{235, 111, 146}, true},
		{"hex long uppercase", "#AABBCC", Color{170, 187, 204}, true},
		{"hex short", "#abc", Color{0xaa, 0xbb, 0xcc}, true},
		{"hex short uppercase", "#FFF", Color{255, 255, 255}, true},
		{"hex surrounding space", "  #000000 ", Color{0, 0, 0}, true},
		{"rgb", "rgb(12, 34, 56)", Color{12, 34, 56}, true},
		{"rgb no spaces", "rgb(255,255,255)", Color{255, 255, 255}, true},
		{"rgba ignores alpha", "rgba(1, 2, 3, 0.5)", Color{1, 2, 3}, true},
		{"rgb clamps", "rgb(300, 0, 999)", Color{255, 0, 255}, true},
		{"hex without hash", "abcdef", Color{}, false},
		{"hex four digits", "#abcd", Color{}, false},
		{"hex eight digits", "#aabbccdd", Color{}, false},
		{"hex invalid chars", "#zzzzzz", Color{}, false},
		{"hsl", "hsl(0, 0%, 0%)", Color{}, false},
		{"css variable", "var(--brand)", Color{}, false},
		{"named color", "rebeccapurple", Color{}, false},
		{"rgb percent", "rgb(10%, 20%, 30%)", Color{}, false},
		{"empty", "", Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSniff(t *testing.T) {
	assert.Equal(t, FormatHexShort, Sniff("#abc"))
	assert.Equal(t, FormatHexLong, Sniff("#aabbcc"))
	assert.Equal(t, FormatRGB, Sniff("rgba(0,0,0,0)"))
	assert.Equal(t, FormatOpaque, Sniff("hsl(0 0% 0%)"))
	assert.Equal(t, FormatOpaque, Sniff("#12345"))
	assert.Equal(t, "opaque", FormatOpaque.String())
	assert.Equal(t, "rgb", FormatRGB.String())
}

func TestColorFormatting(t *testing.T) {
	c := Color{0, 5, 10}
	assert.Equal(t, "#00050a", c.Hex())
	assert.Equal(t, "rgb(0, 5, 10)", c.RGB())
}
