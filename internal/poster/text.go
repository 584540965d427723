package poster

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the faces used for the artist and title text.
//
// Faces are not safe for concurrent use; a Composer draws one cell at a time.
type Fonts struct {
	Artist font.Face
	Title  font.Face
}

// LoadFonts loads TrueType or OpenType fonts at size pixels.
//
// An empty path selects the embedded Go fonts: Go Bold for the artist and
// Go Regular for the title.
func LoadFonts(artistPath, titlePath string, size float64) (*Fonts, error) {
	artist, err := loadFace(artistPath, gobold.TTF, size)
	if err != nil {
		return nil, fmt.Errorf("load artist font: %w", err)
	}
	title, err := loadFace(titlePath, goregular.TTF, size)
	if err != nil {
		return nil, fmt.Errorf("load title font: %w", err)
	}
	return &Fonts{Artist: artist, Title: title}, nil
}

func loadFace(path string, fallback []byte, size float64) (font.Face, error) {
	data := fallback
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", fontName(path), err)
	}

	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func fontName(path string) string {
	if path == "" {
		return "embedded font"
	}
	return path
}

// wrapText breaks text into lines at most width terminal cells wide.
//
// Width is measured in display cells, so a CJK character counts as two.
// Lines break at spaces where possible; words wider than width are split.
func wrapText(text string, width int) []string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(ansi.Wrap(text, width, ""), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
