package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in       string
		expected []string
	}{
		{"", nil},
		{"one", []string{"one"}},
		{"one\n", []string{"one"}},
		{"one\ntwo", []string{"one", "two"}},
		{"one\r\ntwo\r\n", []string{"one", "two"}},
		{"one\n\ntwo", []string{"one", "", "two"}},
		{"one\n\n", []string{"one", ""}},
	}
	for _, tt := range tests {
		if got := SplitLines(tt.in); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("SplitLines(%q) = %#v, expected %#v", tt.in, got, tt.expected)
		}
	}
}

func TestLoadManifest(t *testing.T) {
	tmpDir := t.TempDir()
	manifest := filepath.Join(tmpDir, "manifest.txt")

	// No trimming, blank lines kept verbatim
	content := "configs/one.yaml\n  configs/two.yaml \n\nthree.yaml\n"
	if err := os.WriteFile(manifest, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create manifest: %v", err)
	}

	cfg := NewConfig()
	cfg.ManifestPath = manifest
	if err := cfg.LoadManifest(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []string{"configs/one.yaml", "  configs/two.yaml ", "", "three.yaml"}
	if cfg.LenSources() != len(expected) {
		t.Fatalf("Expected %d sources, got %d", len(expected), cfg.LenSources())
	}
	for i, raw := range expected {
		if cfg.Sources[i].Raw != raw {
			t.Errorf("Source %d: expected %q, got %q", i, raw, cfg.Sources[i].Raw)
		}
	}
}

func TestLoadManifestReinitializes(t *testing.T) {
	tmpDir := t.TempDir()
	manifest := filepath.Join(tmpDir, "manifest.txt")
	if err := os.WriteFile(manifest, []byte("a.yaml\n"), 0644); err != nil {
		t.Fatalf("Failed to create manifest: %v", err)
	}

	cfg := NewConfig()
	cfg.ManifestPath = manifest
	cfg.Sources = []*Source{NewSource("stale.yaml")}
	if err := cfg.LoadManifest(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.LenSources() != 1 || cfg.Sources[0].Raw != "a.yaml" {
		t.Errorf("Expected sources to be replaced, got %d sources", cfg.LenSources())
	}
}

func TestLoadManifestMissing(t *testing.T) {
	cfg := NewConfig()
	cfg.ManifestPath = filepath.Join(t.TempDir(), "nope.txt")

	err := cfg.LoadManifest()
	if err == nil {
		t.Fatal("Expected an error for a missing manifest")
	}
	var readErr *ConfigReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("Expected a ConfigReadError, got %T", err)
	}
	if !strings.Contains(err.Error(), "nope.txt") {
		t.Errorf("Error should name the manifest path: %s", err)
	}
}

func TestValidateSources(t *testing.T) {
	cfg := NewConfig()
	cfg.Sources = []*Source{
		NewSource("one.yaml"),
		NewSource("configs/two.yaml"),
		NewSource("s3://bucket/three.yaml?region=us-west-2"),
	}
	if err := cfg.ValidateSources(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Validation is a predicate, not a filter
	if cfg.LenSources() != 3 {
		t.Errorf("Expected sources untouched, got %d", cfg.LenSources())
	}
}

func TestValidateSourcesFailures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"wrong extension", "one.txt"},
		{"no extension", "Makefile"},
		{"empty line", ""},
		{"case sensitive", "one.YAML"},
		{"extension as prefix", "one.yaml.bak"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Sources = []*Source{NewSource("fine.yaml"), NewSource(tt.raw)}
			err := cfg.ValidateSources()
			if err == nil {
				t.Fatalf("Expected validation to fail for %q", tt.raw)
			}
			var pathErr *PathValidationError
			if !errors.As(err, &pathErr) {
				t.Fatalf("Expected a PathValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), ".yaml") {
				t.Errorf("Error should name the required extension: %s", err)
			}
			if len(pathErr.Paths) != 1 || pathErr.Paths[0] != tt.raw {
				t.Errorf("Expected offending path %q, got %v", tt.raw, pathErr.Paths)
			}
		})
	}
}

func TestValidateSourcesCollectsAllOffenders(t *testing.T) {
	cfg := NewConfig()
	cfg.Sources = []*Source{
		NewSource("a.txt"),
		NewSource("b.yaml"),
		NewSource("c.json"),
	}
	err := cfg.ValidateSources()
	var pathErr *PathValidationError
	if !errors.As(err, &pathErr) {
		t.Fatalf("Expected a PathValidationError, got %T", err)
	}
	if !reflect.DeepEqual(pathErr.Paths, []string{"a.txt", "c.json"}) {
		t.Errorf("Expected both offenders reported, got %v", pathErr.Paths)
	}
}

func TestNewSource(t *testing.T) {
	local := NewSource("configs/app.yaml")
	if local.IsRemote() {
		t.Error("Plain paths should not be remote")
	}
	if local.Ext() != ".yaml" {
		t.Errorf("Expected .yaml, got %s", local.Ext())
	}

	remote := NewSource("s3://bucket/path/app.yaml?region=us-east-1")
	if !remote.IsRemote() {
		t.Error("s3 sources should be remote")
	}
	if remote.URL.Host != "bucket" {
		t.Errorf("Host is actually %s", remote.URL.Host)
	}
	if remote.Ext() != ".yaml" {
		t.Errorf("Query params should not leak into the extension, got %s", remote.Ext())
	}

	blank := NewSource("")
	if blank.IsRemote() || blank.Ext() != "" {
		t.Error("Blank lines should be extensionless local sources")
	}
}
