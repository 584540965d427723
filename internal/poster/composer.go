package poster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	ioutils "github.com/handiism/playlist-poster/internal/io"
	"github.com/handiism/playlist-poster/internal/model"
)

// ErrNoAlbums is returned when a poster is composed from no cells.
var ErrNoAlbums = errors.New("no albums to compose")

// Cell is one album and its decoded artwork.
type Cell struct {
	Album model.Album
	Art   image.Image
}

// Composer draws posters with a fixed layout and fonts.
type Composer struct {
	layout Layout
	fonts  *Fonts
	images *ioutils.ImageService
}

// NewComposer creates a Composer.
func NewComposer(layout Layout, fonts *Fonts) *Composer {
	return &Composer{
		layout: layout,
		fonts:  fonts,
		images: ioutils.NewImageService(),
	}
}

// Layout returns the composer's layout.
func (c *Composer) Layout() Layout {
	return c.layout
}

// Compose draws one cell per album into a new image.
//
// Cells are placed row by row on a grid with cols columns, or
// ceil(sqrt(len(cells))) columns when cols is zero. Grid positions past the
// last album are left transparent.
func (c *Composer) Compose(cells []Cell, cols int) (*image.RGBA, error) {
	if len(cells) == 0 {
		return nil, ErrNoAlbums
	}
	if err := c.layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	grid := NewGrid(len(cells), cols)
	canvas := image.NewRGBA(image.Rect(0, 0, grid.Cols*c.layout.CellWidth(), grid.Rows*c.layout.ArtSize))

	for i, cell := range cells {
		col, row := grid.Position(i)
		origin := image.Pt(col*c.layout.CellWidth(), row*c.layout.ArtSize)
		if err := c.drawCell(canvas, origin, cell); err != nil {
			return nil, fmt.Errorf("album %q: %w", cell.Album.Name, err)
		}
	}

	return canvas, nil
}

func (c *Composer) drawCell(canvas *image.RGBA, origin image.Point, cell Cell) error {
	if cell.Art == nil {
		return errors.New("missing artwork")
	}

	l := c.layout
	art := cell.Album.Art

	artRect := image.Rect(0, 0, l.ArtSize, l.ArtSize).Add(origin)
	scaled := c.images.Resize(cell.Art, l.ArtSize, l.ArtSize)
	draw.Draw(canvas, artRect, scaled, scaled.Bounds().Min, draw.Src)

	panel := image.Rect(l.ArtSize, 0, l.CellWidth(), l.ArtSize).Add(origin)
	bg := parseHex(art.BGColor, defaultBackground)
	draw.Draw(canvas, panel, image.NewUniform(bg), image.Point{}, draw.Src)

	qr, err := newQRCode(cell.Album.ShareURL(l.ShareURLFormat), l.QRBoxSize, l.QRBorder)
	if err != nil {
		return err
	}
	qrColor := withAlpha(parseHex(art.TextColor1, defaultText), l.QRAlpha)
	qr.drawAt(canvas, panel.Max.Sub(image.Pt(qr.Size(), qr.Size())), qrColor)

	artistLines := wrapText(cell.Album.PrimaryArtist(), l.CharsPerLine)
	titleLines := wrapText(cell.Album.Name, l.CharsPerLine)

	textOrigin := panel.Min.Add(image.Pt(l.Margin, l.Margin))
	c.drawLines(canvas, c.fonts.Artist, artistLines, textOrigin, parseHex(art.TextColor3, defaultText))

	titleOrigin := textOrigin.Add(image.Pt(0, l.LineHeight*len(artistLines)))
	c.drawLines(canvas, c.fonts.Title, titleLines, titleOrigin, parseHex(art.TextColor4, defaultText))

	return nil
}

// drawLines draws lines with their tops at origin.Y, origin.Y+LineHeight, ...
func (c *Composer) drawLines(dst draw.Image, face font.Face, lines []string, origin image.Point, textColor color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()

	for i, line := range lines {
		d.Dot = fixed.P(origin.X, origin.Y+ascent+i*c.layout.LineHeight)
		d.DrawString(line)
	}
}
