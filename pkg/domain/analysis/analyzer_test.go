package analysis

import (
	"strings"
	"testing"

	"github.com/brenaudon/krpsim/pkg/infrastructure/config"
)

func mustParse(t *testing.T, src string) *config.RawConfig {
	t.Helper()
	raw, err := config.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return raw
}

func TestAnalyzeSingleChainTimeObjective(t *testing.T) {
	raw := mustParse(t, `a:3
p:(a:1):(b:1):2
q:(b:1):(c:1):3
optimize:(time)
`)
	cfg, err := Analyze(raw)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !cfg.OptimizingTime() {
		t.Fatal("expected time-only objective")
	}
	if len(cfg.Processes) != 2 {
		t.Fatalf("expected 2 processes, got %d", len(cfg.Processes))
	}
}

func TestAnalyzeDuplicateProcessNameFails(t *testing.T) {
	raw := mustParse(t, `a:3
p:(a:1):(b:1):2
p:(b:1):(c:1):3
optimize:(time)
`)
	if _, err := Analyze(raw); err == nil {
		t.Fatal("expected duplicate process name error")
	}
}

func TestAnalyzeMarksObviousCycle(t *testing.T) {
	raw := mustParse(t, `a:1
f:(a:1):(b:1):1
g:(b:1):(a:1):1
optimize:(a)
`)
	cfg, err := Analyze(raw)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for _, p := range cfg.Processes {
		if !p.InCycle {
			t.Fatalf("expected process %q to be marked in_cycle", p.Name)
		}
	}
}

func TestAnalyzeDistField(t *testing.T) {
	raw := mustParse(t, `a:3
p:(a:1):(b:1):2
q:(b:1):(c:1):3
optimize:(c)
`)
	cfg, err := Analyze(raw)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	cID := cfg.NameToID["c"]
	bID := cfg.NameToID["b"]
	aID := cfg.NameToID["a"]
	if cfg.Dist[cID] != 0 {
		t.Fatalf("expected dist[c]=0, got %d", cfg.Dist[cID])
	}
	if cfg.Dist[bID] != 1 {
		t.Fatalf("expected dist[b]=1, got %d", cfg.Dist[bID])
	}
	if cfg.Dist[aID] != 2 {
		t.Fatalf("expected dist[a]=2, got %d", cfg.Dist[aID])
	}
}

func TestAnalyzeCapPruningObjectiveExempt(t *testing.T) {
	raw := mustParse(t, `in:100
heavy:(in:1):(out:1):1
optimize:(out)
`)
	cfg, err := Analyze(raw)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	outID := cfg.NameToID["out"]
	if cfg.MaxStocks.AbsCap[outID] >= 0 && !cfg.MaxStocks.FactorRegime() {
		t.Fatalf("expected objective item out to be exempt from absolute cap, got %d", cfg.MaxStocks.AbsCap[outID])
	}
	if cfg.MaxStocks.FactorRegime() && !cfg.MaxStocks.Factor[outID].IsNegative() {
		t.Fatalf("expected objective item out to carry an uncapped (-1) factor, got %s", cfg.MaxStocks.Factor[outID])
	}
}

func TestAnalyzeNeedersIndex(t *testing.T) {
	raw := mustParse(t, `a:3
p:(a:1):(b:1):2
q:(b:1):(c:1):3
optimize:(c)
`)
	cfg, err := Analyze(raw)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	aID := cfg.NameToID["a"]
	if len(cfg.NeedersByItem[aID]) != 1 {
		t.Fatalf("expected exactly one needer of a, got %d", len(cfg.NeedersByItem[aID]))
	}
}
