package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mandelplot/mandelplot"
)

// parseDimensions parses an image size argument of the form "1000x750".
func parseDimensions(s string) (mandelplot.ImageDimensions, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return mandelplot.ImageDimensions{}, fmt.Errorf("dimensions %q must look like WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return mandelplot.ImageDimensions{}, fmt.Errorf("width %q: %w", w, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return mandelplot.ImageDimensions{}, fmt.Errorf("height %q: %w", h, err)
	}
	return mandelplot.ImageDimensions{Width: width, Height: height}, nil
}

// parseComplex parses a plane coordinate argument of the form "-1.25,0.35"
// into a complex value.
func parseComplex(s string) (complex128, error) {
	r, i, ok := strings.Cut(s, ",")
	if !ok {
		return 0, fmt.Errorf("point %q must look like RE,IM", s)
	}
	re, err := strconv.ParseFloat(r, 64)
	if err != nil {
		return 0, fmt.Errorf("real part %q: %w", r, err)
	}
	im, err := strconv.ParseFloat(i, 64)
	if err != nil {
		return 0, fmt.Errorf("imaginary part %q: %w", i, err)
	}
	return complex(re, im), nil
}

// parseRegion parses a pair of corner arguments into a PlaneRegion.
func parseRegion(upperLeft, lowerRight string) (mandelplot.PlaneRegion, error) {
	ul, err := parseComplex(upperLeft)
	if err != nil {
		return mandelplot.PlaneRegion{}, fmt.Errorf("upper left: %w", err)
	}
	lr, err := parseComplex(lowerRight)
	if err != nil {
		return mandelplot.PlaneRegion{}, fmt.Errorf("lower right: %w", err)
	}
	return mandelplot.PlaneRegion{UpperLeft: ul, LowerRight: lr}, nil
}

// lookupLandmark resolves a --region name.
func lookupLandmark(name string) (mandelplot.PlaneRegion, error) {
	region, ok := mandelplot.Landmarks[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(mandelplot.Landmarks))
		for k := range mandelplot.Landmarks {
			names = append(names, k)
		}
		slices.Sort(names)
		return mandelplot.PlaneRegion{}, fmt.Errorf("unknown region %q (known: %s)", name, strings.Join(names, ", "))
	}
	return region, nil
}
