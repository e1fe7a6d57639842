package analysis

import "github.com/brenaudon/krpsim/pkg/domain/model"

// markObviousCycles flags processes that sit in a contiguous declaration-
// order chain whose results feed the next process's needs and eventually
// loop back to the first process's needs. This is a pruning hint only (see
// design notes): implementations are not expected to reproduce the
// reference's exact, position-sensitive marking, only to include the
// reinstate-one-if-empty safety net wherever in_cycle is consulted.
func markObviousCycles(processes []model.Process) {
	n := len(processes)
	for i := range processes {
		if len(processes[i].Results) == 0 {
			continue
		}
		chain := []int{i}
		pos := i
		for pos+1 < n && multisetEqual(processes[pos].Results, processes[pos+1].Needs) {
			pos++
			chain = append(chain, pos)
			if multisetEqual(processes[pos].Results, processes[i].Needs) {
				for _, idx := range chain {
					processes[idx].InCycle = true
				}
				break
			}
		}
	}
}

func multisetEqual(a, b []model.ItemQty) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, it := range a {
		counts[it.Item] += it.Qty
	}
	for _, it := range b {
		counts[it.Item] -= it.Qty
	}
	for _, v := range counts {
		if v != 0 {
			return false
		}
	}
	return true
}
