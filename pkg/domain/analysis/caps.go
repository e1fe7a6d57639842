package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/brenaudon/krpsim/pkg/domain/model"
)

// computeCaps derives the per-item pruning cap policy described in
// SPEC_FULL.md ("Max-stock caps"). goalID/hasGoal identify the primary
// non-time objective item; when the configuration optimizes pure time there
// is no item to anchor the walk, so every item is left uncapped and clause 3
// of the simulator's termination rule never fires (see DESIGN.md).
func computeCaps(processes []model.Process, initialStocks []int, goalID, numItems int, hasGoal bool) model.CapPolicy {
	uncapped := func() model.CapPolicy {
		abs := make([]int, numItems)
		factor := make([]decimal.Decimal, numItems)
		for i := range abs {
			abs[i] = -1
			factor[i] = decimal.NewFromInt(-1)
		}
		return model.CapPolicy{LimitingItem: -1, LimitingInitialStock: -1, AbsCap: abs, Factor: factor}
	}

	if !hasGoal {
		return uncapped()
	}

	needed := make(map[int]int)
	produced := make(map[int]int)
	visitedProc := make([]bool, len(processes))

	var walk func(item int)
	walk = func(item int) {
		for pid := range processes {
			if visitedProc[pid] {
				continue
			}
			p := processes[pid]
			produces := false
			for _, r := range p.Results {
				if r.Item == item {
					produces = true
					break
				}
			}
			if !produces {
				continue
			}
			visitedProc[pid] = true
			for _, n := range p.Needs {
				needed[n.Item] += n.Qty
			}
			for _, r := range p.Results {
				produced[r.Item] += r.Qty
			}
			for _, n := range p.Needs {
				walk(n.Item)
			}
		}
	}
	walk(goalID)

	inWalk := make(map[int]bool, len(needed)+len(produced))
	for i := range needed {
		inWalk[i] = true
	}
	for i := range produced {
		inWalk[i] = true
	}
	if len(inWalk) == 0 {
		return uncapped()
	}

	net := make(map[int]int, len(inWalk))
	for i := range inWalk {
		net[i] = produced[i] - needed[i]
	}

	limiting := -1
	limitingNet := 0
	for i := 0; i < numItems; i++ {
		n, ok := net[i]
		if !ok || n < 0 {
			continue
		}
		if n == 0 && initialStocks[i] == 0 {
			continue
		}
		if limiting < 0 || n < limitingNet {
			limiting = i
			limitingNet = n
		}
	}
	if limiting < 0 {
		return uncapped()
	}

	abs := make([]int, numItems)
	factor := make([]decimal.Decimal, numItems)
	for i := range abs {
		abs[i] = -1
		factor[i] = decimal.NewFromInt(-1)
	}

	if limitingNet == 0 {
		s0 := initialStocks[limiting]
		neededL := needed[limiting]
		abs[limiting] = s0
		if neededL > 0 {
			s0d := decimal.NewFromInt(int64(s0))
			neededLd := decimal.NewFromInt(int64(neededL))
			ratio := s0d.Div(neededLd)
			for i := range inWalk {
				if i == limiting {
					continue
				}
				neededI := decimal.NewFromInt(int64(needed[i]))
				abs[i] = int(neededI.Mul(ratio).IntPart())
			}
		}
		markObjectiveExempt(abs, factor, goalID)
		return model.CapPolicy{LimitingItem: limiting, LimitingInitialStock: s0, AbsCap: abs, Factor: factor}
	}

	netLd := decimal.NewFromInt(int64(limitingNet))
	for i := range inWalk {
		if i == limiting {
			continue
		}
		factor[i] = decimal.NewFromInt(int64(net[i])).DivRound(netLd, 12)
	}
	markObjectiveExempt(abs, factor, goalID)
	return model.CapPolicy{LimitingItem: limiting, LimitingInitialStock: -1, AbsCap: abs, Factor: factor}
}

func markObjectiveExempt(abs []int, factor []decimal.Decimal, goalID int) {
	abs[goalID] = -1
	factor[goalID] = decimal.NewFromInt(-1)
}
