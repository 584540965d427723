package poster

import (
	"fmt"
	"math"

	"github.com/handiism/playlist-poster/internal/model"
)

// Layout holds the pixel geometry of a poster cell.
type Layout struct {
	// ArtSize is the side of the square artwork, and the cell height.
	ArtSize int

	// PanelWidth is the width of the info panel right of the artwork.
	PanelWidth int

	// Margin is the inset of the text from the panel's top-left corner.
	Margin int

	// LineHeight is the vertical advance between text lines.
	LineHeight int

	// CharsPerLine is the wrap width for artist and title text, in display
	// cells. Wide characters such as CJK count as two.
	CharsPerLine int

	// FontSize is the text size in points at 72 DPI, i.e. pixels.
	FontSize float64

	// QRBoxSize is the pixel size of one QR module.
	QRBoxSize int

	// QRBorder is the quiet zone around the QR code, in modules.
	QRBorder int

	// QRAlpha is the opacity of the QR code's dark modules.
	QRAlpha uint8

	// ShareURLFormat is the link encoded in the QR code; {url} is replaced
	// with the song URL.
	ShareURLFormat string
}

// DefaultLayout returns the layout of a 1500x600 cell.
func DefaultLayout() Layout {
	return Layout{
		ArtSize:        600,
		PanelWidth:     900,
		Margin:         50,
		LineHeight:     100,
		CharsPerLine:   20,
		FontSize:       80,
		QRBoxSize:      6,
		QRBorder:       2,
		QRAlpha:        0x44,
		ShareURLFormat: model.DefaultShareURLFormat,
	}
}

// CellWidth returns the width of one grid cell.
func (l Layout) CellWidth() int {
	return l.ArtSize + l.PanelWidth
}

// Validate checks that every dimension is usable.
func (l Layout) Validate() error {
	switch {
	case l.ArtSize < 1:
		return fmt.Errorf("art size must be positive, got %d", l.ArtSize)
	case l.PanelWidth < 1:
		return fmt.Errorf("panel width must be positive, got %d", l.PanelWidth)
	case l.Margin < 0:
		return fmt.Errorf("margin cannot be negative, got %d", l.Margin)
	case l.LineHeight < 1:
		return fmt.Errorf("line height must be positive, got %d", l.LineHeight)
	case l.CharsPerLine < 1:
		return fmt.Errorf("chars per line must be positive, got %d", l.CharsPerLine)
	case l.FontSize <= 0:
		return fmt.Errorf("font size must be positive, got %.1f", l.FontSize)
	case l.QRBoxSize < 1:
		return fmt.Errorf("qr box size must be positive, got %d", l.QRBoxSize)
	case l.QRBorder < 0:
		return fmt.Errorf("qr border cannot be negative, got %d", l.QRBorder)
	}
	return nil
}

// Grid is the column and row count of a poster.
type Grid struct {
	Cols int
	Rows int
}

// AutoColumns returns ceil(sqrt(n)), the column count used when none is given.
func AutoColumns(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// NewGrid returns the grid for n albums.
//
// A cols of zero or less selects AutoColumns(n). Columns beyond n would
// stay empty and are clamped away.
func NewGrid(n, cols int) Grid {
	if n <= 0 {
		return Grid{}
	}
	if cols <= 0 {
		cols = AutoColumns(n)
	}
	if cols > n {
		cols = n
	}
	return Grid{Cols: cols, Rows: (n + cols - 1) / cols}
}

// Position returns the column and row of the i-th cell, filled row by row.
func (g Grid) Position(i int) (col, row int) {
	return i % g.Cols, i / g.Cols
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Cols * g.Rows
}
