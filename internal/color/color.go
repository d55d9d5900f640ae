// Package color parses the color literals that can appear in a theme or in an
// arbitrary button value and picks a readable text color for them.
package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB triple. Alpha is never tracked.
type Color struct {
	R, G, B uint8
}

// Format identifies the shape of a color literal.
type Format int

const (
	// FormatOpaque is any literal that cannot be decomposed into RGB
	// (hsl(), var(--x), named colors, malformed hex).
	FormatOpaque Format = iota
	// FormatHexShort is #rgb.
	FormatHexShort
	// FormatHexLong is #rrggbb.
	FormatHexLong
	// FormatRGB is rgb(r, g, b) or rgba(r, g, b, a).
	FormatRGB
)

func (f Format) String() string {
	switch f {
	case FormatHexShort:
		return "hex-short"
	case FormatHexLong:
		return "hex-long"
	case FormatRGB:
		return "rgb"
	default:
		return "opaque"
	}
}

var (
	hexShortPattern = regexp.MustCompile(`^#[0-9a-fA-F]{3}$`)
	hexLongPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	rgbPattern      = regexp.MustCompile(`rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)
)

// Sniff classifies a literal by its shape only.
func Sniff(literal string) Format {
	s := strings.TrimSpace(literal)
	switch {
	case hexShortPattern.MatchString(s):
		return FormatHexShort
	case hexLongPattern.MatchString(s):
		return FormatHexLong
	case rgbPattern.MatchString(s):
		return FormatRGB
	default:
		return FormatOpaque
	}
}

// Parse extracts the RGB triple from a hex or rgb()/rgba() literal.
// The second return value is false for opaque literals.
func Parse(literal string) (Color, bool) {
	s := strings.TrimSpace(literal)

	switch Sniff(s) {
	case FormatHexShort, FormatHexLong:
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return Color{}, false
		}
		r, g, b := c.RGB255()
		return Color{R: r, G: g, B: b}, true

	case FormatRGB:
		m := rgbPattern.FindStringSubmatch(s)
		return Color{
			R: channel(m[1]),
			G: channel(m[2]),
			B: channel(m[3]),
		}, true
	}

	return Color{}, false
}

// channel converts a decimal component, clamping to 255 like CSS does.
func channel(s string) uint8 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v > 255 {
		return 255
	}
	return uint8(v)
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the color as "rgb(r, g, b)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
