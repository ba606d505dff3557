package mandelplot

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RenderConfig carries everything a render needs. It is built once from
// external input and never mutated afterwards.
type RenderConfig struct {
	Dims          ImageDimensions
	Region        PlaneRegion
	MaxIterations int
	Workers       int
}

// Validate rejects configurations Render is not prepared to handle. Render
// itself assumes a validated config and repeats none of these checks.
func (c RenderConfig) Validate() error {
	if err := c.Dims.Validate(); err != nil {
		return err
	}
	if err := c.Region.Validate(); err != nil {
		return err
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("iteration limit %d must be positive", c.MaxIterations)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("worker count %d must be positive", c.Workers)
	}
	return nil
}

// Band is a contiguous range of image rows assigned to one worker. End is
// exclusive.
type Band struct {
	Start int
	End   int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.End - b.Start
}

// Bands splits the row range [0, height) into workers contiguous bands with
// no gaps and no overlap. When height is not divisible by workers the
// remainder is spread one row at a time across the leading bands, so band
// sizes differ by at most one. Trailing bands may be empty when workers
// exceeds height.
func Bands(height, workers int) []Band {
	size := height / workers
	extra := height % workers

	bands := make([]Band, workers)
	row := 0
	for i := range bands {
		rows := size
		if i < extra {
			rows++
		}
		bands[i] = Band{Start: row, End: row + rows}
		row += rows
	}
	return bands
}

// Render computes the grayscale raster for cfg and returns it as a row-major
// byte buffer of cfg.Dims.Pixels() intensity values, row 0 on top.
//
// The buffer is allocated once and partitioned into one band per worker.
// Every worker writes only its own disjoint sub-slice, so the compute phase
// needs no locks and the result is byte-identical regardless of worker
// count. Render blocks until every band is done; a panicking worker fails
// the whole render and no buffer is returned.
//
// cfg must have passed Validate.
func Render(ctx context.Context, cfg RenderConfig) ([]byte, error) {
	pixels := make([]byte, cfg.Dims.Pixels())

	g, _ := errgroup.WithContext(ctx)
	for _, band := range Bands(cfg.Dims.Height, cfg.Workers) {
		band := band
		// Disjoint by construction: band i ends where band i+1 starts.
		slice := pixels[band.Start*cfg.Dims.Width : band.End*cfg.Dims.Width]
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("band rows [%d,%d): %v", band.Start, band.End, r)
				}
			}()
			renderBand(slice, band, cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return pixels, nil
}

// renderBand fills one band's slice of the pixel buffer. slice holds exactly
// band.Rows()*cfg.Dims.Width bytes, offset so that index 0 is the first
// pixel of band.Start.
func renderBand(slice []byte, band Band, cfg RenderConfig) {
	for row := band.Start; row < band.End; row++ {
		base := (row - band.Start) * cfg.Dims.Width
		for col := 0; col < cfg.Dims.Width; col++ {
			point := PixelToPoint(cfg.Dims, row, col, cfg.Region)
			iterations, escaped := EscapeTime(point, cfg.MaxIterations)
			slice[base+col] = Intensity(iterations, escaped, cfg.MaxIterations)
		}
	}
}
