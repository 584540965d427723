package poster

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	defaultBackground = color.NRGBA{A: 0xff}
	defaultText       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// parseHex parses a 3 or 6 digit hex color, with or without a leading '#'.
// Empty or invalid input returns fallback.
func parseHex(hex string, fallback color.NRGBA) color.NRGBA {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if !isHexColor(hex) {
		return fallback
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return fallback
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// isHexColor reports whether s is exactly 3 or 6 hex digits.
func isHexColor(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
