package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mandelplot/mandelplot"
)

var renderRegionName string

var renderCmd = &cobra.Command{
	Use:   "render FILE PIXELS UPPERLEFT LOWERRIGHT THREADS",
	Short: "Render the set once and save it as a grayscale PNG",
	Long: `Render computes one image and writes it to FILE as a grayscale PNG.

PIXELS is the image size as WIDTHxHEIGHT. UPPERLEFT and LOWERRIGHT are the
plane corners as RE,IM pairs; with --region they are replaced by a named
landmark and the command takes only FILE PIXELS THREADS.

Examples:
  mandelplot render mandel.png 1000x750 -1.20,0.35 -1,0.20 8
  mandelplot render seahorse.png 1920x1080 --region seahorse 8`,
	Args: cobra.RangeArgs(3, 5),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := renderConfigFromArgs(args)
		if err != nil {
			return err
		}
		return renderToFile(args[0], cfg)
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderRegionName, "region", "", "named landmark region instead of explicit corners")
	rootCmd.AddCommand(renderCmd)
}

// renderConfigFromArgs turns the positional arguments into a validated
// RenderConfig. All input validation happens here; the render core assumes a
// good config.
func renderConfigFromArgs(args []string) (mandelplot.RenderConfig, error) {
	var cfg mandelplot.RenderConfig

	region, rest, err := regionFromArgs(args[1:])
	if err != nil {
		return cfg, err
	}

	dims, err := parseDimensions(args[1])
	if err != nil {
		return cfg, err
	}

	workers, err := strconv.Atoi(rest)
	if err != nil {
		return cfg, fmt.Errorf("thread count %q: %w", rest, err)
	}

	cfg = mandelplot.RenderConfig{
		Dims:          dims,
		Region:        region,
		MaxIterations: viper.GetInt("iterations"),
		Workers:       workers,
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// regionFromArgs resolves the plane region from either the --region flag or
// the two corner positionals, and returns the remaining THREADS argument.
// args starts at PIXELS.
func regionFromArgs(args []string) (mandelplot.PlaneRegion, string, error) {
	if renderRegionName != "" {
		if len(args) != 2 {
			return mandelplot.PlaneRegion{}, "", fmt.Errorf("with --region expected FILE PIXELS THREADS, got %d extra arguments", len(args)-2)
		}
		region, err := lookupLandmark(renderRegionName)
		return region, args[1], err
	}

	if len(args) != 4 {
		return mandelplot.PlaneRegion{}, "", fmt.Errorf("expected FILE PIXELS UPPERLEFT LOWERRIGHT THREADS")
	}
	region, err := parseRegion(args[1], args[2])
	return region, args[3], err
}

// renderToFile runs the render and writes the PNG in one shot, so a failed
// render never leaves a file behind.
func renderToFile(filename string, cfg mandelplot.RenderConfig) error {
	log.Printf("rendering %dx%d, %d workers, %d iterations", cfg.Dims.Width, cfg.Dims.Height, cfg.Workers, cfg.MaxIterations)

	start := time.Now()
	pixels, err := mandelplot.Render(context.Background(), cfg)
	if err != nil {
		return err
	}
	log.Printf("render took %s", time.Since(start))

	var buf bytes.Buffer
	if err := mandelplot.EncodePNG(&buf, pixels, cfg.Dims); err != nil {
		return err
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", filename, err)
	}

	log.Printf("image saved to %q", filename)
	return nil
}
