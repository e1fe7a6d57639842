package tuning

import (
	"strings"
	"testing"

	"github.com/brenaudon/krpsim/pkg/application/search"
)

func TestLoadOverridesSubsetOfFields(t *testing.T) {
	doc := `alpha: 2.0
seed: 42
`
	base := search.DefaultParams()
	merged, err := Load(strings.NewReader(doc), base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if merged.Alpha != 2.0 {
		t.Fatalf("expected alpha override to apply, got %v", merged.Alpha)
	}
	if merged.Seed != 42 {
		t.Fatalf("expected seed override to apply, got %v", merged.Seed)
	}
	if merged.Beta != base.Beta {
		t.Fatalf("expected beta to keep its default, got %v", merged.Beta)
	}
}

func TestLoadRejectsOutOfRangeMutationRate(t *testing.T) {
	doc := `mutationRate: 150
`
	_, err := Load(strings.NewReader(doc), search.DefaultParams())
	if err == nil {
		t.Fatal("expected error for out-of-range mutationRate")
	}
}

func TestLoadRejectsNegativePopulationSize(t *testing.T) {
	doc := `populationSize: -5
`
	_, err := Load(strings.NewReader(doc), search.DefaultParams())
	if err == nil {
		t.Fatal("expected error for negative populationSize")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	doc := `: this is not valid yaml : :`
	_, err := Load(strings.NewReader(doc), search.DefaultParams())
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadEmptyDocumentKeepsDefaults(t *testing.T) {
	base := search.DefaultParams()
	merged, err := Load(strings.NewReader(""), base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if merged != base {
		t.Fatalf("expected unchanged params for empty document, got %+v", merged)
	}
}
