package analysis

import "github.com/brenaudon/krpsim/pkg/infrastructure/config"

// distField computes the production distance of every item name reachable
// backward from goal through the reverse producer graph: goal is distance 0,
// and any need of a process that produces an already-reached item is one
// hop further. This is a breadth-first search from goal, equivalent to (but
// terminating unlike) the reference's recursive expansion.
func distField(processes []config.RawProcess, goal string) map[string]int {
	dist := map[string]int{goal: 0}
	queue := []string{goal}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		d := dist[item]
		for _, p := range processes {
			if !producesName(p, item) {
				continue
			}
			for _, n := range p.Needs {
				if _, seen := dist[n.Name]; !seen {
					dist[n.Name] = d + 1
					queue = append(queue, n.Name)
				}
			}
		}
	}
	return dist
}

func producesName(p config.RawProcess, item string) bool {
	for _, r := range p.Results {
		if r.Name == item {
			return true
		}
	}
	return false
}
