package simulate

import (
	"strings"
	"testing"

	"github.com/brenaudon/krpsim/pkg/domain/analysis"
	"github.com/brenaudon/krpsim/pkg/domain/model"
	"github.com/brenaudon/krpsim/pkg/infrastructure/config"
)

func mustAnalyze(t *testing.T, src string) *model.Config {
	t.Helper()
	raw, err := config.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg, err := analysis.Analyze(raw)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return cfg
}

// processID resolves a process id by name. Config.NameToID only indexes
// item names, never process names, so process lookups in these tests go
// through Config.Processes instead.
func processID(t *testing.T, cfg *model.Config, name string) int {
	t.Helper()
	for pid, p := range cfg.Processes {
		if p.Name == name {
			return pid
		}
	}
	t.Fatalf("no such process %q", name)
	return -1
}

func TestStateWaitSemantics(t *testing.T) {
	cfg := mustAnalyze(t, `x:1
slow:(x:1):(y:1):10
optimize:(y)
`)
	st := New(cfg)

	slowID := processID(t, cfg, "slow")
	if !st.IsRunnable(slowID) {
		t.Fatal("expected slow to be runnable at start")
	}
	if err := st.Advance(slowID); err != nil {
		t.Fatalf("launch: %v", err)
	}
	if st.IsRunnable(slowID) {
		t.Fatal("slow should not be runnable once x is consumed")
	}
	if err := st.Advance(model.WaitSentinel); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if st.Candidate.Cycle != 10 {
		t.Fatalf("expected cycle 10 after wait, got %d", st.Candidate.Cycle)
	}
	yID := cfg.NameToID["y"]
	xID := cfg.NameToID["x"]
	if st.Candidate.Stocks[yID] != 1 || st.Candidate.Stocks[xID] != 0 {
		t.Fatalf("unexpected final stocks: y=%d x=%d", st.Candidate.Stocks[yID], st.Candidate.Stocks[xID])
	}
}

func TestStateRunnableSetMaintenance(t *testing.T) {
	cfg := mustAnalyze(t, `a:1
p:(a:1):(b:1):1
q:(b:1):(c:1):1
optimize:(c)
`)
	st := New(cfg)
	pID := processID(t, cfg, "p")
	qID := processID(t, cfg, "q")

	if !st.IsRunnable(pID) {
		t.Fatal("p should be runnable initially")
	}
	if st.IsRunnable(qID) {
		t.Fatal("q should not be runnable before b is produced")
	}
	if err := st.Advance(pID); err != nil {
		t.Fatalf("launch p: %v", err)
	}
	if err := st.Advance(model.WaitSentinel); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if !st.IsRunnable(qID) {
		t.Fatal("q should become runnable once b is produced")
	}
}

func TestStateTerminatesAtMaxCycles(t *testing.T) {
	cfg := mustAnalyze(t, `a:1
p:(a:1):(b:1):1000
optimize:(b)
`)
	st := New(cfg)
	pID := processID(t, cfg, "p")
	if err := st.Advance(pID); err != nil {
		t.Fatalf("launch: %v", err)
	}
	if st.Terminated(5) {
		t.Fatal("expected non-termination before maxCycles reached")
	}
	if err := st.Advance(model.WaitSentinel); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if !st.Terminated(5) {
		t.Fatalf("expected termination once cycle %d reaches maxCycles 5", st.Candidate.Cycle)
	}
}

func TestStateLaunchRejectsInsufficientStock(t *testing.T) {
	cfg := mustAnalyze(t, `a:0
p:(a:1):(b:1):1
optimize:(b)
`)
	st := New(cfg)
	pID := processID(t, cfg, "p")
	if err := st.Advance(pID); err == nil {
		t.Fatal("expected error launching process without enough stock")
	}
}

func TestFilterCycleReinstatesWhenOnlyCyclicChoicesRemain(t *testing.T) {
	cfg := mustAnalyze(t, `a:1
f:(a:1):(b:1):1
g:(b:1):(a:1):1
optimize:(a)
`)
	fID := processID(t, cfg, "f")
	choices := []int{fID}
	filtered := FilterCycle(cfg, choices)
	if len(filtered) != 1 || filtered[0] != fID {
		t.Fatalf("expected f reinstated when it is the only choice, got %v", filtered)
	}
}
