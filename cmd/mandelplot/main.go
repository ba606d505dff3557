// mandelplot renders grayscale images of the Mandelbrot set, either as a
// one-shot PNG on disk or through a live-preview web server.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
