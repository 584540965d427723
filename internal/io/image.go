package ioutils

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// ImageService provides image processing operations for cover art and posters.
//
// ImageService is used to:
//   - Decode downloaded cover art from disk
//   - Resize cover art to the poster's cell size
//   - Encode the finished poster as PNG
//
// Example usage:
//
//	svc := NewImageService()
//
//	art, _ := svc.DecodeFile(".cache/abc.jpg")
//	scaled := svc.Resize(art, 600, 600)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// DecodeFile decodes a JPEG or PNG image from disk.
func (s *ImageService) DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// Resize scales an image to exactly width x height.
//
// Images already at the requested size are returned unchanged. Otherwise
// the Catmull-Rom kernel is used for high-quality scaling. Cover art is
// square, so no aspect correction is attempted.
func (s *ImageService) Resize(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// EncodePNG writes img to w as PNG.
func (s *ImageService) EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
