package formatters

import (
	"strings"
	"testing"

	"github.com/envloom/envloom/pkg/config"
	"github.com/envloom/envloom/pkg/resolvers"
)

func TestReportGenerate(t *testing.T) {
	report := &Report{}
	report.Append(&resolvers.Extraction{
		Source: config.NewSource("base.yaml"),
		Pairs: []resolvers.Pair{
			{Key: "SHARED", Value: "from base"},
			{Key: "BASE_ONLY", Value: "1"},
		},
	})
	report.Append(&resolvers.Extraction{
		Source: config.NewSource("override.yaml"),
		Pairs: []resolvers.Pair{
			{Key: "SHARED", Value: "from override"},
		},
	})

	out := report.Generate()

	if !strings.Contains(out, "base.yaml") || !strings.Contains(out, "override.yaml") {
		t.Errorf("Report should name both sources:\n%s", out)
	}
	if !strings.Contains(out, "-SHARED") {
		t.Errorf("The overridden source should carry the - marker:\n%s", out)
	}
	if !strings.Contains(out, "+SHARED") {
		t.Errorf("The winning source should carry the + marker:\n%s", out)
	}
	if strings.Contains(out, "-BASE_ONLY") || strings.Contains(out, "+BASE_ONLY") {
		t.Errorf("Keys from a single source should carry no marker:\n%s", out)
	}
}

func TestReportEmpty(t *testing.T) {
	report := &Report{}
	out := report.Generate()
	if !strings.Contains(out, "Keys") {
		t.Errorf("Even an empty report keeps its header:\n%s", out)
	}
}
