package config

import (
	"fmt"
	"strings"
)

// ConfigReadError indicates the manifest file itself could not be read
type ConfigReadError struct {
	Path string
	Err  error
}

func (e *ConfigReadError) Error() string {
	return fmt.Sprintf("could not read manifest file %s: %s", e.Path, e.Err)
}

func (e *ConfigReadError) Unwrap() error { return e.Err }

// PathValidationError indicates one or more manifest entries lack the
// required source extension
type PathValidationError struct {
	Ext   string
	Paths []string
}

func (e *PathValidationError) Error() string {
	return fmt.Sprintf("all paths in the manifest must have the %s extension, invalid: %s",
		e.Ext, strings.Join(e.Paths, ", "))
}
