package formatters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"regexp"
	"sort"
	"strings"

	"sigs.k8s.io/yaml"
)

type formatterFunc func(map[string]string) string

// Formatters is a map of available formatters
var Formatters = map[string]formatterFunc{
	"env":    EnvFormatter,
	"export": ExportFormatter,
	"json":   JSONFormatter,
	"yaml":   YAMLFormatter,
}

// Merge accumulates the maps into one, in slice order, so a key defined by
// a later map overwrites an earlier one
func Merge(i []map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range i {
		maps.Copy(out, m)
	}
	return out
}

type entry struct {
	key, value string
}

// trimmedEntries trims surrounding whitespace from every key and value
// independently, one entry per mapping entry. Keys that trim equal stay
// distinct entries, so the line-oriented formatters emit one line per
// entry rather than collapsing them. Sorted by key, then value, for
// predictable output order.
func trimmedEntries(m map[string]string) []entry {
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, entry{key: strings.TrimSpace(k), value: strings.TrimSpace(v)})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].key != entries[j].key {
			return entries[i].key < entries[j].key
		}
		return entries[i].value < entries[j].value
	})
	return entries
}

// trimMap is the collapsing variant for the object formatters, whose
// output formats cannot carry duplicate keys
func trimMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

func envEscape(i string) string {
	var envQuoteRegex = regexp.MustCompile(`(\\|"|\$|` + "`)")
	return envQuoteRegex.ReplaceAllString(i, `\$1`)
}

// EnvFormatter renders the mapping as one trimmed key=value line per
// entry, ordered by key. This is the default env-file output.
func EnvFormatter(m map[string]string) string {
	var buffer bytes.Buffer
	for _, e := range trimmedEntries(m) {
		buffer.WriteString(fmt.Sprintf("%s=%s", e.key, e.value))
		buffer.WriteString("\n")
	}
	return buffer.String()
}

// ExportFormatter returns a string to be evaluated by a shell for the
// setting of environment variables. The variables will be ordered by key.
func ExportFormatter(m map[string]string) string {
	var buffer bytes.Buffer
	for _, e := range trimmedEntries(m) {
		buffer.WriteString(fmt.Sprintf("export %s=\"%s\"", e.key, envEscape(e.value)))
		buffer.WriteString("\n")
	}
	return buffer.String()
}

// JSONFormatter returns a json representation of the trimmed mapping
func JSONFormatter(m map[string]string) string {
	out, err := json.Marshal(trimMap(m))
	if err != nil {
		return `{}`
	}
	return string(out)
}

// YAMLFormatter returns a yaml representation of the trimmed mapping
func YAMLFormatter(m map[string]string) string {
	out, err := yaml.Marshal(trimMap(m))
	if err != nil {
		return `{}`
	}
	return string(out)
}
