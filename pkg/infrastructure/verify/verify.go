// Package verify replays a trace file against a raw (unanalyzed)
// configuration and reports whether it is feasible.
package verify

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/brenaudon/krpsim/pkg/infrastructure/config"
)

var reTraceLine = regexp.MustCompile(`^\s*(\d+)\s*:\s*([^:#\s]+)\s*$`)

// Result is the final state after replaying a trace to completion.
type Result struct {
	Cycle  int
	Stocks map[string]int
}

type inFlight struct {
	finish  int
	process string
}

// Run replays trace against raw, resolving completions strictly before each
// launch, and returns the final cycle and stocks. Any unknown process,
// insufficient stock, or out-of-order cycle is reported as an error naming
// the offending trace line.
func Run(raw *config.RawConfig, trace io.Reader) (Result, error) {
	stocks := make(map[string]int, len(raw.Stocks))
	for _, s := range raw.Stocks {
		stocks[s.Name] += s.Qty
	}

	byName := make(map[string]config.RawProcess, len(raw.Processes))
	for _, p := range raw.Processes {
		byName[p.Name] = p
	}

	resolve := func(running []inFlight, cycle int) []inFlight {
		var remaining []inFlight
		for _, r := range running {
			if r.finish > cycle {
				remaining = append(remaining, r)
				continue
			}
			for _, res := range byName[r.process].Results {
				stocks[res.Name] += res.Qty
			}
		}
		return remaining
	}

	var running []inFlight
	cycle := 0

	scanner := bufio.NewScanner(trace)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := stripComment(scanner.Text())
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := reTraceLine.FindStringSubmatch(line)
		if m == nil {
			return Result{}, fmt.Errorf("verify: line %d: malformed trace entry %q", lineno, scanner.Text())
		}
		lineCycle, err := strconv.Atoi(m[1])
		if err != nil {
			return Result{}, fmt.Errorf("verify: line %d: bad cycle %q: %w", lineno, m[1], err)
		}
		name := m[2]

		if lineCycle < cycle {
			return Result{}, fmt.Errorf("verify: line %d: cycle %d precedes current cycle %d", lineno, lineCycle, cycle)
		}
		cycle = lineCycle
		running = resolve(running, cycle)

		proc, ok := byName[name]
		if !ok {
			return Result{}, fmt.Errorf("verify: line %d: cycle %d: unknown process %q", lineno, cycle, name)
		}
		for _, n := range proc.Needs {
			if stocks[n.Name] < n.Qty {
				return Result{}, fmt.Errorf("verify: line %d: cycle %d: process %q needs %d of %q, have %d",
					lineno, cycle, name, n.Qty, n.Name, stocks[n.Name])
			}
		}
		for _, n := range proc.Needs {
			stocks[n.Name] -= n.Qty
		}
		finish := cycle + proc.Delay
		running = append(running, inFlight{finish: finish, process: name})
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("verify: read trace: %w", err)
	}

	for len(running) > 0 {
		next := running[0].finish
		for _, r := range running {
			if r.finish < next {
				next = r.finish
			}
		}
		cycle = next
		running = resolve(running, cycle)
	}

	return Result{Cycle: cycle, Stocks: stocks}, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}
