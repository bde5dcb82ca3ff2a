package resolvers

import (
	"fmt"
	"strings"
)

// SourceReadError indicates a validated source could not be opened or read
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("could not read source file %s: %s", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }

// SecretResolutionError indicates secret references in an already-read
// source could not be resolved, a connector or fetch failure rather than
// file I/O. Refs names the references that stayed unresolved.
type SecretResolutionError struct {
	Path string
	Refs []string
	Err  error
}

func (e *SecretResolutionError) Error() string {
	msg := fmt.Sprintf("could not resolve secret references in file %s", e.Path)
	if len(e.Refs) > 0 {
		msg = fmt.Sprintf("%s (%s)", msg, strings.Join(e.Refs, ", "))
	}
	return fmt.Sprintf("%s: %s", msg, e.Err)
}

func (e *SecretResolutionError) Unwrap() error { return e.Err }

// ContentValidationError indicates a source contains a line with no colon
// separator. The whole file is rejected, not just the bad line.
type ContentValidationError struct {
	Path string
}

func (e *ContentValidationError) Error() string {
	return fmt.Sprintf("unsupported entry structure in file %s: every line must contain a colon", e.Path)
}
