package app

import (
	"fmt"
	"os"

	"github.com/envloom/envloom/pkg/config"
	"github.com/envloom/envloom/pkg/formatters"
	"github.com/envloom/envloom/pkg/resolvers"
)

// OutputWriteError indicates the output file could not be created or
// written
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("could not write env file %s: %s", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }

// Run drives the whole pipeline: manifest, validation, extraction per
// source in manifest order, merge, then the formatted write. Each step
// fully completes before the next begins and the first error aborts the
// run; nothing is ever written on failure.
func Run(cfg *config.Config) error {
	formatter, ok := formatters.Formatters[cfg.Format]
	if !ok {
		return fmt.Errorf("no formatter named %q", cfg.Format)
	}

	if err := cfg.LoadManifest(); err != nil {
		return err
	}
	if err := cfg.ValidateSources(); err != nil {
		return err
	}

	var rendered []map[string]string
	report := &formatters.Report{}
	for _, source := range cfg.Sources {
		extraction, err := resolvers.Extract(source)
		if err != nil {
			return err
		}
		rendered = append(rendered, extraction.AsMap())
		report.Append(extraction)
	}

	// Merge together our rendered sources which are listed in the order
	// they appear in the manifest
	merged := formatters.Merge(rendered)

	if err := os.WriteFile(cfg.OutputPath, []byte(formatter(merged)), 0o644); err != nil {
		return &OutputWriteError{Path: cfg.OutputPath, Err: err}
	}

	if cfg.ShowReport {
		fmt.Fprint(os.Stderr, report.Generate())
	}
	return nil
}
