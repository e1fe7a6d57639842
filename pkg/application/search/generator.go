package search

import (
	"math/rand"

	"github.com/brenaudon/krpsim/pkg/domain/model"
	"github.com/brenaudon/krpsim/pkg/domain/simulate"
)

// budgetCheckInterval is how often (in generator steps) the wall-clock
// budget is re-checked inside a single candidate's construction, tightening
// the driver's overshoot bound without changing any other contract.
const budgetCheckInterval = 256

// Generate builds one freshly simulated candidate. With both parents nil it
// performs a pure random walk under the cycle/cap filtering discipline;
// with parents supplied it follows their traces positionally, falling back
// to mutation when a parent's choice at that position is unavailable.
//
// exceeded is polled every budgetCheckInterval steps and, if true, halts
// generation early with whatever partial candidate has been built so far.
func Generate(cfg *model.Config, params Params, rng *rand.Rand, p1, p2 *model.Candidate, exceeded func() bool) model.Candidate {
	st := simulate.New(cfg)

	for i := 0; ; i++ {
		if i%budgetCheckInterval == 0 && exceeded != nil && exceeded() {
			break
		}
		if st.Terminated(params.MaxCycles) {
			break
		}

		choices := st.Runnable()
		choices = simulate.FilterCycle(cfg, choices)
		choices = simulate.FilterCap(cfg, st.Candidate.Stocks, choices, st.Candidate.RunningLen())
		if len(choices) == 0 {
			break
		}

		r := float64(rng.Intn(100))
		threshold := 100.0 - params.MutationRate/2

		choice, ok := parentChoice(p1, i, choices, r < threshold)
		if !ok {
			choice, ok = parentChoice(p2, i, choices, !(r > threshold))
		}
		if !ok {
			choice = choices[rng.Intn(len(choices))]
		}

		_ = st.Advance(choice)
	}

	return st.Candidate
}

func parentChoice(parent *model.Candidate, i int, choices []int, gate bool) (int, bool) {
	if parent == nil || !gate || i >= len(parent.Trace) {
		return 0, false
	}
	pid := parent.Trace[i].Process
	for _, c := range choices {
		if c == pid {
			return pid, true
		}
	}
	return 0, false
}
