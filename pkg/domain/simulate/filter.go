package simulate

import "github.com/brenaudon/krpsim/pkg/domain/model"

// FilterCycle drops in_cycle processes from choices, keeping the wait
// sentinel untouched. If removal would erase every non-wait choice, the
// first filtered-out process is reinstated so the generator always has a
// way to make progress out of an obvious cycle (see scenario S3).
func FilterCycle(cfg *model.Config, choices []int) []int {
	kept := make([]int, 0, len(choices))
	var firstDropped = -1
	for _, c := range choices {
		if c == model.WaitSentinel || !cfg.Processes[c].InCycle {
			kept = append(kept, c)
			continue
		}
		if firstDropped == -1 {
			firstDropped = c
		}
	}
	if !hasNonWait(kept) && firstDropped != -1 {
		kept = insertBeforeWait(kept, firstDropped)
	}
	return kept
}

// FilterCap drops processes that are cap-blocked. Unlike FilterCycle, the
// reinstate-one-if-empty safety net only applies while runningLen is zero:
// per the specification, cap-blocking a process while something is already
// in flight should fall back to waiting for that completion, not to
// force-launching an over-cap process.
func FilterCap(cfg *model.Config, stocks []int, choices []int, runningLen int) []int {
	kept := make([]int, 0, len(choices))
	firstDropped := -1
	for _, c := range choices {
		if c == model.WaitSentinel || !cfg.MaxStocks.CapBlocked(cfg.Processes[c], stocks) {
			kept = append(kept, c)
			continue
		}
		if firstDropped == -1 {
			firstDropped = c
		}
	}
	if runningLen == 0 && !hasNonWait(kept) && firstDropped != -1 {
		kept = insertBeforeWait(kept, firstDropped)
	}
	return kept
}

func hasNonWait(choices []int) bool {
	for _, c := range choices {
		if c != model.WaitSentinel {
			return true
		}
	}
	return false
}

func insertBeforeWait(choices []int, id int) []int {
	if len(choices) > 0 && choices[len(choices)-1] == model.WaitSentinel {
		out := make([]int, 0, len(choices)+1)
		out = append(out, choices[:len(choices)-1]...)
		out = append(out, id, model.WaitSentinel)
		return out
	}
	return append(choices, id)
}
