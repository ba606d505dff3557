package mandelplot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBands(t *testing.T) {
	tests := []struct {
		name    string
		height  int
		workers int
		sizes   []int
	}{
		{"even split", 8, 4, []int{2, 2, 2, 2}},
		{"remainder spread over leading bands", 10, 4, []int{3, 3, 2, 2}},
		{"single worker", 7, 1, []int{7}},
		{"one row each", 4, 4, []int{1, 1, 1, 1}},
		{"more workers than rows", 3, 5, []int{1, 1, 1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := Bands(tt.height, tt.workers)
			require.Len(t, bands, tt.workers)

			row := 0
			for i, b := range bands {
				assert.Equal(t, row, b.Start, "band %d must start where the previous one ended", i)
				assert.Equal(t, tt.sizes[i], b.Rows())
				row = b.End
			}
			assert.Equal(t, tt.height, row, "bands must cover every row")
		})
	}
}

func TestBandsSizesDifferByAtMostOne(t *testing.T) {
	for height := 1; height <= 64; height++ {
		for workers := 1; workers <= 16; workers++ {
			floor := height / workers
			for _, b := range Bands(height, workers) {
				rows := b.Rows()
				if rows != floor && rows != floor+1 {
					t.Fatalf("Bands(%d, %d): band size %d, want %d or %d", height, workers, rows, floor, floor+1)
				}
			}
		}
	}
}

func TestRenderScenario(t *testing.T) {
	cfg := RenderConfig{
		Dims:          ImageDimensions{Width: 100, Height: 100},
		Region:        PlaneRegion{UpperLeft: complex(-1, 1), LowerRight: complex(1, -1)},
		MaxIterations: 50,
		Workers:       4,
	}
	require.NoError(t, cfg.Validate())

	pixels, err := Render(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, pixels, 10000)

	// The center pixel sits at the plane origin, which is in the set.
	assert.EqualValues(t, 0, pixels[50*100+50])

	// The top left corner maps to -1+1i, which escapes quickly.
	assert.NotZero(t, pixels[0])
}

func TestRenderIdenticalAcrossWorkerCounts(t *testing.T) {
	base := RenderConfig{
		Dims:          ImageDimensions{Width: 120, Height: 90},
		Region:        SeahorseValley,
		MaxIterations: 200,
		Workers:       1,
	}
	serial, err := Render(context.Background(), base)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 8, 13} {
		cfg := base
		cfg.Workers = workers
		parallel, err := Render(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, serial, parallel, "worker count %d changed the output", workers)
	}
}

func TestRenderConfigValidate(t *testing.T) {
	valid := RenderConfig{
		Dims:          ImageDimensions{Width: 10, Height: 10},
		Region:        FullSet,
		MaxIterations: 100,
		Workers:       2,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*RenderConfig)
	}{
		{"zero width", func(c *RenderConfig) { c.Dims.Width = 0 }},
		{"negative height", func(c *RenderConfig) { c.Dims.Height = -5 }},
		{"inverted real extent", func(c *RenderConfig) {
			c.Region = PlaneRegion{UpperLeft: complex(1, 1), LowerRight: complex(-1, -1)}
		}},
		{"inverted imaginary extent", func(c *RenderConfig) {
			c.Region = PlaneRegion{UpperLeft: complex(-1, -1), LowerRight: complex(1, 1)}
		}},
		{"degenerate region", func(c *RenderConfig) {
			c.Region = PlaneRegion{UpperLeft: complex(0.5, 0.5), LowerRight: complex(0.5, 0.5)}
		}},
		{"zero iterations", func(c *RenderConfig) { c.MaxIterations = 0 }},
		{"zero workers", func(c *RenderConfig) { c.Workers = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
