package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/envloom/envloom/pkg"
	"github.com/envloom/envloom/pkg/app"
	"github.com/envloom/envloom/pkg/config"
)

var (
	showVersion = false
	showReport  = false
)

var (
	manifestPath string
	outputPath   string
	format       string
	sourceExt    string
)

func main() {
	flagSet := flag.NewFlagSet("envloom", flag.ExitOnError)
	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, "Example usage: envloom -c manifest.txt -o app.env\n")
		flagSet.PrintDefaults()
	}
	flagSet.BoolVar(&showVersion, "v", false, "print version string")
	flagSet.StringVar(&manifestPath, "c", "", "path to the manifest listing source files")
	flagSet.StringVar(&manifestPath, "config", "", "path to the manifest listing source files")
	flagSet.StringVar(&outputPath, "o", "", "path to the output env file")
	flagSet.StringVar(&outputPath, "output", "", "path to the output env file")
	flagSet.StringVar(&format, "f", config.DefaultFormat, "output format (env, export, json, yaml)")
	flagSet.StringVar(&format, "format", config.DefaultFormat, "output format (env, export, json, yaml)")
	flagSet.StringVar(&sourceExt, "x", config.DefaultSourceExt, "required source file extension")
	flagSet.StringVar(&sourceExt, "ext", config.DefaultSourceExt, "required source file extension")
	flagSet.BoolVar(&showReport, "r", false, "print a key override report to stderr")
	flagSet.BoolVar(&showReport, "report", false, "print a key override report to stderr")
	flagSet.Parse(os.Args[1:])

	if showVersion {
		fmt.Printf("envloom version %s (golang: %s)\n", pkg.Version, runtime.Version())
		return
	}

	if manifestPath == "" || outputPath == "" {
		flagSet.Usage()
		os.Exit(2)
	}

	cfg := config.NewConfig()
	cfg.ManifestPath = manifestPath
	cfg.OutputPath = outputPath
	cfg.Format = format
	cfg.SourceExt = sourceExt
	cfg.ShowReport = showReport

	if err := app.Run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Env file created successfully.")
}
