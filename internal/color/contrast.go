package color

import "math"

// LightThreshold is the relative luminance above which a background counts as
// light and gets dark text.
const LightThreshold = 0.5

// Luminance returns the WCAG 2.0 relative luminance of c, in [0, 1].
func Luminance(c Color) float64 {
	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize converts an sRGB channel to linear RGB
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// IsLight reports whether text on top of c should be dark.
func IsLight(c Color) bool {
	return Luminance(c) > LightThreshold
}

// ResolveContrast picks the text color for a background literal.
// It returns dark when the background is light, light otherwise. Literals that
// cannot be parsed (hsl(), var(--x), named colors) always get light.
func ResolveContrast(candidate, dark, light string) string {
	c, ok := Parse(candidate)
	if !ok {
		return light
	}
	if IsLight(c) {
		return dark
	}
	return light
}
