package config

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultSourceExt is the extension source files must carry unless
// overridden on the command line.
const DefaultSourceExt = ".yaml"

// DefaultFormat is the output format used when none is requested.
const DefaultFormat = "env"

// Source is a single manifest entry. Raw holds the manifest line verbatim.
// URL is set only when the line is a remote source reference (s3 scheme);
// every other line is treated as a local file path.
type Source struct {
	Raw string
	URL *url.URL
}

// NewSource builds a source from one manifest line
func NewSource(raw string) *Source {
	s := &Source{Raw: raw}
	if u, err := url.Parse(raw); err == nil && u.Scheme == "s3" {
		s.URL = u
	}
	return s
}

// IsRemote indicates whether this source is fetched rather than read from
// the local filesystem
func (s *Source) IsRemote() bool {
	return s.URL != nil
}

// Ext returns the source's file extension. For remote sources the extension
// is taken from the URL path so query parameters don't leak into it.
func (s *Source) Ext() string {
	if s.URL != nil {
		return path.Ext(s.URL.Path)
	}
	return filepath.Ext(s.Raw)
}

// Config is the configuration for a single run. It is built explicitly by
// the caller and handed to app.Run; nothing is read from ambient state.
type Config struct {
	ManifestPath string
	OutputPath   string
	SourceExt    string
	Format       string
	ShowReport   bool

	Sources []*Source
}

// NewConfig returns a new configuration with defaults applied
func NewConfig() *Config {
	return &Config{
		SourceExt: DefaultSourceExt,
		Format:    DefaultFormat,
	}
}

// LoadManifest reads the manifest file and sets the internal sources slice,
// one source per manifest line, verbatim. Blank lines are kept; they fail
// extension validation later since they have no extension.
func (c *Config) LoadManifest() error {
	content, err := os.ReadFile(c.ManifestPath)
	if err != nil {
		return &ConfigReadError{Path: c.ManifestPath, Err: err}
	}

	// Re-initialize
	c.Sources = nil
	for _, line := range SplitLines(string(content)) {
		c.Sources = append(c.Sources, NewSource(line))
	}
	return nil
}

// ValidateSources confirms every source carries the required extension,
// exact match and case-sensitive. All offenders are collected before
// failing so the error can name each bad entry. The sources slice is never
// filtered: either every entry passes or the whole batch is rejected.
func (c *Config) ValidateSources() error {
	var invalid []string
	for _, source := range c.Sources {
		if source.Ext() != c.SourceExt {
			invalid = append(invalid, source.Raw)
		}
	}
	if len(invalid) > 0 {
		return &PathValidationError{Ext: c.SourceExt, Paths: invalid}
	}
	return nil
}

// LenSources is the number of sources
func (c *Config) LenSources() int {
	return len(c.Sources)
}

// SplitLines splits text into lines, accepting both LF and CRLF
// terminators. A trailing terminator does not produce a phantom empty
// line and empty content has zero lines.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
