package mandelplot

import "fmt"

// ImageDimensions is the pixel shape of the output raster.
type ImageDimensions struct {
	Width  int
	Height int
}

// Pixels returns the total pixel count, which is also the byte length of the
// render buffer.
func (d ImageDimensions) Pixels() int {
	return d.Width * d.Height
}

// Validate reports non-positive dimensions.
func (d ImageDimensions) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("dimensions %dx%d must be positive", d.Width, d.Height)
	}
	return nil
}

// PixelToPoint returns the point on the complex plane corresponding to the
// pixel at (row, col) in an image of the given dimensions covering region.
// Row 0 maps exactly to the region's top edge and column 0 to its left edge.
// Callers only pass rows in [0, Height) and columns in [0, Width).
func PixelToPoint(dims ImageDimensions, row, col int, region PlaneRegion) complex128 {
	width := real(region.LowerRight) - real(region.UpperLeft)
	height := imag(region.UpperLeft) - imag(region.LowerRight)

	return complex(
		real(region.UpperLeft)+float64(col)*width/float64(dims.Width),
		imag(region.UpperLeft)-float64(row)*height/float64(dims.Height),
	)
}
