// Package analysis compiles a raw parsed configuration into the frozen
// model.Config the simulator and search operate on: duplicate-name
// validation, distance field, objective-relevant filtering, item indexing,
// the needers-by-item inverted index, max-stock caps and the obvious-cycle
// marker, run in that fixed order.
package analysis

import (
	"fmt"

	"github.com/brenaudon/krpsim/pkg/domain/model"
	"github.com/brenaudon/krpsim/pkg/infrastructure/config"
)

// Analyze runs the full analyzer pipeline over a freshly parsed
// configuration and returns the frozen Config consumed by the rest of the
// program.
func Analyze(raw *config.RawConfig) (*model.Config, error) {
	if err := checkDuplicateProcesses(raw.Processes); err != nil {
		return nil, err
	}

	var goalName string
	hasGoal := false
	var objectives []string
	for _, k := range raw.OptimizeKeys {
		if k != "time" {
			if !hasGoal {
				goalName = k
				hasGoal = true
			}
			objectives = append(objectives, k)
		}
	}

	var dist map[string]int
	if hasGoal {
		dist = distField(raw.Processes, goalName)
	}

	processes := raw.Processes
	if hasGoal {
		processes = relevantProcesses(processes, objectives)
	}

	idx, initialStocks, converted := buildIndex(raw.Stocks, processes)

	goalID := -1
	if hasGoal {
		goalID = idx.id(goalName)
		for len(initialStocks) < len(idx.idToName) {
			initialStocks = append(initialStocks, 0)
		}
	}
	numItems := len(idx.idToName)

	needers := make([][]model.NeederRef, numItems)
	for pid, p := range converted {
		for _, n := range p.Needs {
			needers[n.Item] = append(needers[n.Item], model.NeederRef{Process: pid, Qty: n.Qty})
		}
	}

	distByID := make([]int, numItems)
	for i := range distByID {
		distByID[i] = -1
	}
	for name, d := range dist {
		if id, ok := idx.nameToID[name]; ok {
			distByID[id] = d
		}
	}

	caps := computeCaps(converted, initialStocks, goalID, numItems, hasGoal)

	markObviousCycles(converted)

	cfg := &model.Config{
		InitialStocks: initialStocks,
		Processes:     converted,
		OptimizeKeys:  raw.OptimizeKeys,
		Dist:          distByID,
		NeedersByItem: needers,
		MaxStocks:     caps,
		IDToName:      idx.idToName,
		NameToID:      idx.nameToID,
	}
	return cfg, nil
}

func checkDuplicateProcesses(processes []config.RawProcess) error {
	seen := make(map[string]bool, len(processes))
	for _, p := range processes {
		if seen[p.Name] {
			return fmt.Errorf("analysis: duplicate process name %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}
