package palette

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/printlayout/pkg/errors"
)

// Color is a normalized "#RRGGBB" hex color.
type Color string

// ParseColor parses a "#RGB" or "#RRGGBB" hex string (case-insensitive)
// and returns it in upper-case six-digit form.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 7 || !strings.HasPrefix(s, "#") || !isHex(s[1:]) {
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid hex color %q", s)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid hex color %q", s)
	}
	return Color(strings.ToUpper(c.Hex())), nil
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// MustParseColor is like ParseColor but panics on invalid input.
// Intended for constants and tests.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the hex representation.
func (c Color) String() string { return string(c) }

// RGB255 returns the 0-255 channel values. Invalid colors yield black.
func (c Color) RGB255() (r, g, b uint8) {
	cc, err := colorful.Hex(strings.ToLower(string(c)))
	if err != nil {
		return 0, 0, 0
	}
	return cc.RGB255()
}

// Blend mixes c toward other by t in [0,1] in RGB space.
func (c Color) Blend(other Color, t float64) Color {
	a, errA := colorful.Hex(strings.ToLower(string(c)))
	b, errB := colorful.Hex(strings.ToLower(string(other)))
	if errA != nil || errB != nil {
		return c
	}
	return Color(strings.ToUpper(a.BlendRgb(b, t).Clamped().Hex()))
}

// Luminance returns the WCAG relative luminance of c in [0,1].
func Luminance(c Color) float64 {
	r, g, b := c.RGB255()
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// linearize applies sRGB gamma expansion to a single 0-255 channel.
func linearize(v uint8) float64 {
	c := float64(v) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between a and b.
// The ratio is symmetric and always >= 1.
func ContrastRatio(a, b Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	lighter, darker := max(la, lb), min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}
