package mandelplot

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrayImageWrapsBufferWithoutCopy(t *testing.T) {
	dims := ImageDimensions{Width: 3, Height: 2}
	pixels := []byte{10, 20, 30, 40, 50, 60}

	img, err := GrayImage(pixels, dims)
	require.NoError(t, err)

	assert.Equal(t, 3, img.Stride)
	assert.EqualValues(t, 60, img.GrayAt(2, 1).Y)

	pixels[0] = 99
	assert.EqualValues(t, 99, img.GrayAt(0, 0).Y, "image must view the buffer, not copy it")
}

func TestGrayImageRejectsWrongLength(t *testing.T) {
	_, err := GrayImage(make([]byte, 5), ImageDimensions{Width: 3, Height: 2})
	assert.Error(t, err)
}

func TestEncodePNGRoundTrip(t *testing.T) {
	cfg := RenderConfig{
		Dims:          ImageDimensions{Width: 40, Height: 30},
		Region:        FullSet,
		MaxIterations: 64,
		Workers:       3,
	}
	pixels, err := Render(context.Background(), cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, pixels, cfg.Dims))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, decoded.Bounds().Dx())
	assert.Equal(t, 30, decoded.Bounds().Dy())
}
