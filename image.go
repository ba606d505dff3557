package mandelplot

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// GrayImage wraps a render buffer as an image.Gray without copying. pixels
// must hold exactly dims.Pixels() bytes in row-major order.
func GrayImage(pixels []byte, dims ImageDimensions) (*image.Gray, error) {
	if len(pixels) != dims.Pixels() {
		return nil, fmt.Errorf("buffer holds %d bytes, dimensions %dx%d need %d", len(pixels), dims.Width, dims.Height, dims.Pixels())
	}
	return &image.Gray{
		Pix:    pixels,
		Stride: dims.Width,
		Rect:   image.Rect(0, 0, dims.Width, dims.Height),
	}, nil
}

// EncodePNG writes a render buffer to w as a grayscale PNG.
func EncodePNG(w io.Writer, pixels []byte, dims ImageDimensions) error {
	img, err := GrayImage(pixels, dims)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
