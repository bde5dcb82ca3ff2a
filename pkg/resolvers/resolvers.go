package resolvers

import (
	"os"
	"strings"

	"github.com/envloom/envloom/pkg/config"
)

// Pair is one key/value entry extracted from a single source line. Key and
// value are the raw substrings around the first colon, untrimmed; trimming
// is deferred to the output formatters.
type Pair struct {
	Key, Value string
}

// Extraction holds the ordered pairs extracted from one source
type Extraction struct {
	Source *config.Source
	Pairs  []Pair
}

// AsMap accumulates the pairs into a map in line order, so within one
// source a later line wins for a repeated key
func (e *Extraction) AsMap() map[string]string {
	out := make(map[string]string, len(e.Pairs))
	for _, p := range e.Pairs {
		out[p.Key] = p.Value
	}
	return out
}

// Keys returns the distinct trimmed keys in line order
func (e *Extraction) Keys() []string {
	seen := make(map[string]bool, len(e.Pairs))
	var keys []string
	for _, p := range e.Pairs {
		k := strings.TrimSpace(p.Key)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

// LenPairs returns the number of pairs extracted
func (e *Extraction) LenPairs() int {
	return len(e.Pairs)
}

// Extract reads one validated source and parses its content into ordered
// key/value pairs. Values that are secrets manager references are resolved
// in place before the extraction is returned.
func Extract(source *config.Source) (*Extraction, error) {
	return extract(source, nil)
}

// extract is the injectable core of Extract. A nil connector means a real
// secrets manager connector is built lazily, and only when the source
// actually contains references.
func extract(source *config.Source, connector secretsConnector) (*Extraction, error) {
	content, err := readSource(source)
	if err != nil {
		return nil, &SourceReadError{Path: source.Raw, Err: err}
	}

	pairs, err := parsePairs(content, source.Raw)
	if err != nil {
		return nil, err
	}

	if err := resolveSecretRefs(pairs, source.Raw, connector); err != nil {
		return nil, err
	}

	return &Extraction{Source: source, Pairs: pairs}, nil
}

func readSource(source *config.Source) (string, error) {
	if source.IsRemote() {
		return readS3Source(source)
	}
	content, err := os.ReadFile(source.Raw)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// parsePairs splits content into lines and each line at its first colon.
// A single line without a colon rejects the whole source; an empty line
// has no colon and is malformed like any other. A leading colon yields an
// empty key and a trailing colon an empty value, both fine. An empty
// source has zero lines and yields zero pairs.
func parsePairs(content, sourcePath string) ([]Pair, error) {
	var pairs []Pair
	for _, line := range config.SplitLines(content) {
		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, &ContentValidationError{Path: sourcePath}
		}
		pairs = append(pairs, Pair{Key: key, Value: value})
	}
	return pairs, nil
}
