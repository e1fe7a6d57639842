package analysis

import "github.com/brenaudon/krpsim/pkg/infrastructure/config"

// relevantProcesses keeps only the processes reachable by reverse traversal
// from the objective items: a process that produces an objective item is
// kept, then any process producing one of its needs, transitively. If the
// filter would empty the catalogue, the original list is kept unchanged
// (safety fallback).
func relevantProcesses(processes []config.RawProcess, objectiveItems []string) []config.RawProcess {
	needed := make(map[string]bool, len(objectiveItems))
	for _, item := range objectiveItems {
		needed[item] = true
	}

	keep := make([]bool, len(processes))
	for {
		changed := false
		for i, p := range processes {
			if keep[i] {
				continue
			}
			relevant := false
			for _, r := range p.Results {
				if needed[r.Name] {
					relevant = true
					break
				}
			}
			if !relevant {
				continue
			}
			keep[i] = true
			changed = true
			for _, n := range p.Needs {
				if !needed[n.Name] {
					needed[n.Name] = true
				}
			}
		}
		if !changed {
			break
		}
	}

	var kept []config.RawProcess
	for i, p := range processes {
		if keep[i] {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return processes
	}
	return kept
}
