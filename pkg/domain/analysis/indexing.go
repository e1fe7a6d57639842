package analysis

import (
	"github.com/brenaudon/krpsim/pkg/domain/model"
	"github.com/brenaudon/krpsim/pkg/infrastructure/config"
)

// itemIndex assigns dense item ids in first-appearance order: stocks first,
// then each process's needs, then its results.
type itemIndex struct {
	nameToID map[string]int
	idToName []string
}

func newItemIndex() *itemIndex {
	return &itemIndex{nameToID: make(map[string]int)}
}

func (idx *itemIndex) id(name string) int {
	if id, ok := idx.nameToID[name]; ok {
		return id
	}
	id := len(idx.idToName)
	idx.nameToID[name] = id
	idx.idToName = append(idx.idToName, name)
	return id
}

// buildIndex indexes items and rewrites processes into id-keyed form. It
// returns the index, the initial stock vector and the converted processes.
func buildIndex(stocks []config.RawItem, processes []config.RawProcess) (*itemIndex, []int, []model.Process) {
	idx := newItemIndex()

	seen := make(map[string]bool, len(stocks))
	order := make([]string, 0, len(stocks))
	values := make(map[string]int, len(stocks))
	for _, s := range stocks {
		idx.id(s.Name)
		if !seen[s.Name] {
			seen[s.Name] = true
			order = append(order, s.Name)
			values[s.Name] = s.Qty
		}
	}

	for _, p := range processes {
		for _, n := range p.Needs {
			idx.id(n.Name)
		}
		for _, r := range p.Results {
			idx.id(r.Name)
		}
	}

	initial := make([]int, len(idx.idToName))
	for _, name := range order {
		initial[idx.nameToID[name]] = values[name]
	}

	converted := make([]model.Process, len(processes))
	for i, p := range processes {
		converted[i] = model.Process{
			Name:    p.Name,
			Needs:   convertItems(idx, p.Needs),
			Results: convertItems(idx, p.Results),
			Delay:   p.Delay,
		}
	}

	return idx, initial, converted
}

func convertItems(idx *itemIndex, items []config.RawItem) []model.ItemQty {
	if len(items) == 0 {
		return nil
	}
	out := make([]model.ItemQty, len(items))
	for i, it := range items {
		out[i] = model.ItemQty{Item: idx.id(it.Name), Qty: it.Qty}
	}
	return out
}
