package search

import (
	"context"
	"math/rand"
	"testing"
	"time"
)

func TestRunBudgetTruncationReturnsEmptyCandidate(t *testing.T) {
	cfg := mustAnalyze(t, `x:1
slow:(x:1):(y:1):10
optimize:(y)
`)
	best := Run(context.Background(), cfg, DefaultParams(), 0)
	if best.Cycle != 0 || len(best.Trace) != 0 {
		t.Fatalf("expected empty candidate at zero budget, got cycle=%d trace=%v", best.Cycle, best.Trace)
	}
}

func TestRunFindsAScheduleGivenTime(t *testing.T) {
	cfg := mustAnalyze(t, `a:3
p:(a:1):(b:1):2
q:(b:1):(c:1):3
optimize:(time)
`)
	params := DefaultParams()
	params.PopulationSize = 20
	params.MaxIter = 20
	params.Seed = 42
	best := Run(context.Background(), cfg, params, 200*time.Millisecond)
	if len(best.Trace) == 0 {
		t.Fatal("expected the search to find a non-empty schedule")
	}
}

func TestGenerateDeterministicAtFixedSeed(t *testing.T) {
	cfg := mustAnalyze(t, `a:3
p:(a:1):(b:1):2
q:(b:1):(c:1):3
optimize:(time)
`)
	params := DefaultParams()

	first := Generate(cfg, params, rand.New(rand.NewSource(7)), nil, nil, nil)
	second := Generate(cfg, params, rand.New(rand.NewSource(7)), nil, nil, nil)

	if len(first.Trace) != len(second.Trace) {
		t.Fatalf("expected identical trace length at fixed seed, got %d vs %d", len(first.Trace), len(second.Trace))
	}
	for i := range first.Trace {
		if first.Trace[i] != second.Trace[i] {
			t.Fatalf("trace diverged at position %d: %+v vs %+v", i, first.Trace[i], second.Trace[i])
		}
	}
}
