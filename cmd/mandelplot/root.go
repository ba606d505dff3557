package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mandelplot",
	Short: "Render grayscale images of the Mandelbrot set",
	Long: `mandelplot computes escape-time rasters of the Mandelbrot set over an
arbitrary rectangle of the complex plane, splitting the image into row bands
that are rendered in parallel.

Quick start:
  mandelplot render mandel.png 1000x750 -1.20,0.35 -1,0.20 8
  mandelplot render mandel.png 1000x750 --region seahorse 8
  mandelplot serve --port 8080`,
}

// Execute runs the root command. Cobra already prints the error, callers
// only need the exit status.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .mandelplot.yml)")
	rootCmd.PersistentFlags().Int("iterations", 255, "escape iteration limit per pixel")
	viper.BindPFlag("iterations", rootCmd.PersistentFlags().Lookup("iterations"))
	viper.SetDefault("workers", runtime.NumCPU())
}

// initConfig wires viper's sources: the --config flag wins, otherwise a
// .mandelplot.yml in the current directory is picked up if present, and any
// value can be overridden through MANDELPLOT_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mandelplot")
	}

	viper.SetEnvPrefix("MANDELPLOT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
