// Package mandelplot renders grayscale rasters of the Mandelbrot set.
//
// The package maps pixel coordinates onto a rectangle of the complex plane,
// classifies each point with the escape-time iteration and writes intensity
// bytes into a shared buffer that is split into disjoint row bands, one per
// worker.
package mandelplot

import "fmt"

// PlaneRegion is the rectangle of the complex plane covered by the output
// image. UpperLeft corresponds to pixel (0,0); imaginary parts decrease
// downward, matching screen orientation.
type PlaneRegion struct {
	UpperLeft  complex128
	LowerRight complex128
}

// Validate reports degenerate or inverted regions.
func (r PlaneRegion) Validate() error {
	if real(r.UpperLeft) >= real(r.LowerRight) {
		return fmt.Errorf("region real extent [%g,%g] is empty or inverted", real(r.UpperLeft), real(r.LowerRight))
	}
	if imag(r.UpperLeft) <= imag(r.LowerRight) {
		return fmt.Errorf("region imaginary extent [%g,%g] is empty or inverted", imag(r.LowerRight), imag(r.UpperLeft))
	}
	return nil
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// FullSet – the whole set with some margin around the main cardioid
	FullSet = PlaneRegion{
		UpperLeft:  complex(-2.5, 1.5),
		LowerRight: complex(1.0, -1.5),
	}

	// SeahorseValley – dense filaments and repeating “seahorse” curls
	SeahorseValley = PlaneRegion{
		UpperLeft:  complex(-0.8, 0.15),
		LowerRight: complex(-0.7, 0.05),
	}

	// ElephantValley – large bulb with trunk-like tendrils
	ElephantValley = PlaneRegion{
		UpperLeft:  complex(-1.85, -0.02),
		LowerRight: complex(-1.75, -0.10),
	}

	// SpiralMinibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = PlaneRegion{
		UpperLeft:  complex(-0.7435, 0.1325),
		LowerRight: complex(-0.7420, 0.1310),
	}

	// TripleSpiral – threefold symmetric spiral structure
	TripleSpiral = PlaneRegion{
		UpperLeft:  complex(-0.7480, 0.0980),
		LowerRight: complex(-0.7450, 0.0950),
	}

	// ValleyOfTheDragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = PlaneRegion{
		UpperLeft:  complex(-0.7400, 0.1850),
		LowerRight: complex(-0.7350, 0.1800),
	}

	// MinibrotInMiniSpiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = PlaneRegion{
		UpperLeft:  complex(-1.7390, -0.0220),
		LowerRight: complex(-1.7375, -0.0235),
	}
)

// Landmarks maps region names accepted on the command line to their plane
// rectangles.
var Landmarks = map[string]PlaneRegion{
	"full":       FullSet,
	"seahorse":   SeahorseValley,
	"elephant":   ElephantValley,
	"minibrot":   SpiralMinibrot,
	"triple":     TripleSpiral,
	"dragon":     ValleyOfTheDragon,
	"minispiral": MinibrotInMiniSpiral,
}
