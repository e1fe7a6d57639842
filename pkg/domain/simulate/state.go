// Package simulate advances a candidate schedule cycle by cycle: launching
// processes, resolving completions, and incrementally maintaining the set of
// currently-runnable processes so the search never has to rescan the whole
// catalogue at each step.
package simulate

import (
	"fmt"

	"github.com/brenaudon/krpsim/pkg/domain/model"
)

// State pairs a Candidate with the bookkeeping (missing-need counters and the
// runnable list) the simulator needs to apply Advance in amortized-cheap
// time. It is not itself part of the model: a State always wraps exactly one
// Candidate and is rebuilt whenever a Candidate is cloned.
type State struct {
	cfg        *model.Config
	Candidate  model.Candidate
	missing    []int
	runnable   []int
	isRunnable []bool
}

// New builds a State around a freshly seeded Candidate, computing the
// initial missing counts and runnable set from scratch.
func New(cfg *model.Config) *State {
	s := &State{
		cfg:       cfg,
		Candidate: model.NewCandidate(cfg),
	}
	s.rebuild()
	return s
}

// Resume wraps an existing Candidate (e.g. a clone) in a fresh State,
// recomputing missing counts and the runnable set from its current stocks.
func Resume(cfg *model.Config, candidate model.Candidate) *State {
	s := &State{cfg: cfg, Candidate: candidate}
	s.rebuild()
	return s
}

func (s *State) rebuild() {
	n := len(s.cfg.Processes)
	s.missing = make([]int, n)
	s.isRunnable = make([]bool, n)
	s.runnable = s.runnable[:0]
	for pid, p := range s.cfg.Processes {
		missing := 0
		for _, need := range p.Needs {
			if s.Candidate.Stocks[need.Item] < need.Qty {
				missing++
			}
		}
		s.missing[pid] = missing
		if missing == 0 {
			s.isRunnable[pid] = true
			s.runnable = append(s.runnable, pid)
		}
	}
}

// Runnable returns the current runnable process ids, in the order they
// became runnable, plus the wait sentinel appended at the tail iff
// processes are in flight.
func (s *State) Runnable() []int {
	out := make([]int, len(s.runnable), len(s.runnable)+1)
	copy(out, s.runnable)
	if s.Candidate.RunningLen() > 0 {
		out = append(out, model.WaitSentinel)
	}
	return out
}

// Terminated reports whether the simulation has reached a halting state per
// the simulator's termination rule: the hard cycle cap, or an empty
// runnable set with nothing in flight.
func (s *State) Terminated(maxCycles int) bool {
	if s.Candidate.Cycle >= maxCycles {
		return true
	}
	return len(s.runnable) == 0 && s.Candidate.RunningLen() == 0
}

// Advance applies one primitive step: wait (model.WaitSentinel) or a launch
// (a process id). It returns an error if the choice is not currently legal,
// which callers should treat as a logic bug in the caller rather than a
// recoverable condition.
func (s *State) Advance(choice int) error {
	if choice == model.WaitSentinel {
		return s.wait()
	}
	return s.launch(choice)
}

func (s *State) wait() error {
	if s.Candidate.RunningLen() == 0 {
		return fmt.Errorf("simulate: wait requested with nothing in flight")
	}
	s.Candidate.Cycle = s.Candidate.EarliestFinish()
	for s.Candidate.RunningLen() > 0 && s.Candidate.EarliestFinish() <= s.Candidate.Cycle {
		_, pid := s.Candidate.PopRunning()
		for _, r := range s.cfg.Processes[pid].Results {
			old := s.Candidate.Stocks[r.Item]
			s.Candidate.Stocks[r.Item] = old + r.Qty
			s.onIncrease(r.Item, old, old+r.Qty)
		}
	}
	s.reconcile()
	return nil
}

func (s *State) launch(pid int) error {
	if pid < 0 || pid >= len(s.cfg.Processes) {
		return fmt.Errorf("simulate: unknown process id %d", pid)
	}
	proc := s.cfg.Processes[pid]
	for _, n := range proc.Needs {
		if s.Candidate.Stocks[n.Item] < n.Qty {
			return fmt.Errorf("simulate: process %q not runnable: need %d of item %d, have %d",
				proc.Name, n.Qty, n.Item, s.Candidate.Stocks[n.Item])
		}
	}
	s.Candidate.PushRunning(s.Candidate.Cycle+proc.Delay, pid)
	for _, n := range proc.Needs {
		old := s.Candidate.Stocks[n.Item]
		s.Candidate.Stocks[n.Item] = old - n.Qty
		s.onDecrease(n.Item, old, old-n.Qty)
	}
	s.Candidate.Trace = append(s.Candidate.Trace, model.TraceEntry{Cycle: s.Candidate.Cycle, Process: pid})
	s.reconcile()
	return nil
}

// onIncrease implements the needers-index-driven runnable-set update: for
// every process that needs item i, decrementing its missing count whenever
// the increase crosses that need's threshold.
func (s *State) onIncrease(item, oldVal, newVal int) {
	for _, ref := range s.cfg.NeedersByItem[item] {
		if oldVal < ref.Qty && ref.Qty <= newVal {
			s.missing[ref.Process]--
			if s.missing[ref.Process] == 0 {
				s.markRunnable(ref.Process)
			}
		}
	}
}

func (s *State) onDecrease(item, oldVal, newVal int) {
	for _, ref := range s.cfg.NeedersByItem[item] {
		if newVal < ref.Qty && ref.Qty <= oldVal {
			wasRunnable := s.missing[ref.Process] == 0
			s.missing[ref.Process]++
			if wasRunnable {
				s.markNotRunnable(ref.Process)
			}
		}
	}
}

func (s *State) markRunnable(pid int) {
	if s.isRunnable[pid] {
		return
	}
	s.isRunnable[pid] = true
	s.runnable = append(s.runnable, pid)
}

func (s *State) markNotRunnable(pid int) {
	if !s.isRunnable[pid] {
		return
	}
	s.isRunnable[pid] = false
	for i, id := range s.runnable {
		if id == pid {
			s.runnable = append(s.runnable[:i], s.runnable[i+1:]...)
			break
		}
	}
}

// reconcile is the defensive reconciliation called for after every advance:
// it scans for processes whose missing count reached zero but whose
// runnable flag was not (yet) flipped, which should not happen through the
// callbacks above but guards against drift if a caller mutates stocks
// directly.
func (s *State) reconcile() {
	for pid, m := range s.missing {
		if m == 0 && !s.isRunnable[pid] {
			s.markRunnable(pid)
		}
	}
}

// IsRunnable reports whether pid is currently in the runnable set (P3).
func (s *State) IsRunnable(pid int) bool {
	return s.isRunnable[pid]
}

// Missing returns the current missing-need count for pid (test/debug use).
func (s *State) Missing(pid int) int {
	return s.missing[pid]
}
