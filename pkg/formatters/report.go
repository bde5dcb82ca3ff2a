package formatters

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/envloom/envloom/pkg/resolvers"
)

// Report is used to generate a report of which keys were loaded from which
// source and which ones overrode others.
type Report struct {
	Extractions []*resolvers.Extraction
}

// Append adds an extraction to the report
func (r *Report) Append(e *resolvers.Extraction) {
	r.Extractions = append(r.Extractions, e)
}

// Generate returns a report string. Keys defined by more than one source
// carry a marker: + on the source that wins, - on the sources it beat.
func (r *Report) Generate() string {
	var out bytes.Buffer
	tabWriter := tabwriter.NewWriter(&out, 0, 8, 0, '\t', 0)
	keyMap := r.getKeyMap()

	// Header row
	tabWriter.Write([]byte("Keys\tSource\n"))

	for idx, e := range r.Extractions {
		sourceName := fmt.Sprintf("%d-%s", idx, e.Source.Raw)
		var keys []string
		for _, key := range e.Keys() {
			var overrideIndicator string
			if len(keyMap[key]) > 1 {
				if keyMap[key][len(keyMap[key])-1] == sourceName {
					overrideIndicator = "+"
				} else {
					overrideIndicator = "-"
				}
			}
			keys = append(keys, overrideIndicator+key)
		}
		fmt.Fprintf(tabWriter, "%s\t%s\n", strings.Join(keys, ", "), e.Source.Raw)
	}
	tabWriter.Flush()
	return out.String()
}

func (r *Report) getKeyMap() map[string][]string {
	out := map[string][]string{}
	for idx, e := range r.Extractions {
		sourceName := fmt.Sprintf("%d-%s", idx, e.Source.Raw)
		for _, key := range e.Keys() {
			out[key] = append(out[key], sourceName)
		}
	}
	return out
}
