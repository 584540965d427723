package poster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	qrcode "github.com/skip2/go-qrcode"
)

// qrCode is an encoded QR symbol without its quiet zone.
type qrCode struct {
	modules [][]bool
	box     int
	border  int
}

func newQRCode(content string, box, border int) (*qrCode, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	q.DisableBorder = true

	return &qrCode{modules: q.Bitmap(), box: box, border: border}, nil
}

// Size returns the side of the rendered code in pixels, quiet zone included.
func (q *qrCode) Size() int {
	return (len(q.modules) + 2*q.border) * q.box
}

// drawAt composites the dark modules onto dst with the code's top-left
// corner at pt. Light modules and the quiet zone stay untouched.
func (q *qrCode) drawAt(dst draw.Image, pt image.Point, c color.Color) {
	src := image.NewUniform(c)
	offset := q.border * q.box

	for y, row := range q.modules {
		for x, dark := range row {
			if !dark {
				continue
			}
			topLeft := pt.Add(image.Pt(offset+x*q.box, offset+y*q.box))
			r := image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(q.box, q.box))}
			draw.Draw(dst, r, src, image.Point{}, draw.Over)
		}
	}
}
