package model

import (
	"strconv"
	"strings"
)

// Artwork describes a cover image and its theme colors.
//
// URL is a template containing {w}, {h} and {f} placeholders for width,
// height and file format, for example:
//
//	https://is1-ssl.mzstatic.com/image/thumb/Music/v4/ab/cd/ef/uuid/cover.jpg/{w}x{h}bb.{f}
//
// Colors are hex strings without a leading '#', e.g. "f4e1c1".
type Artwork struct {
	URL    string
	Width  int
	Height int

	TextColor1 string
	TextColor2 string
	TextColor3 string
	TextColor4 string
	BGColor    string
}

// FormatURL fills the URL template with the requested size and format.
//
// A zero width or height falls back to the artwork's native size.
func (a Artwork) FormatURL(width, height int, format string) string {
	if width == 0 {
		width = a.Width
	}
	if height == 0 {
		height = a.Height
	}

	r := strings.NewReplacer(
		"{w}", strconv.Itoa(width),
		"{h}", strconv.Itoa(height),
		"{f}", format,
	)
	return r.Replace(a.URL)
}
