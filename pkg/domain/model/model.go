// Package model holds the value types shared by the analyzer, the simulator
// and the search: items, processes and the frozen Config they are compiled
// into.
package model

import "github.com/shopspring/decimal"

// ItemQty pairs a dense item id with a positive quantity. It is the
// post-analysis representation of what the grammar calls an <item>.
type ItemQty struct {
	Item int
	Qty  int
}

// Process is a catalogue entry identified by its position in Config.Processes
// (its process id). Needs and Results are expressed in item ids once the
// analyzer has run; delay is in cycles.
type Process struct {
	Name    string
	Needs   []ItemQty
	Results []ItemQty
	Delay   int
	InCycle bool
}

// NeederRef is one entry of the inverted needs index: process Process needs
// Qty units of the item it is filed under.
type NeederRef struct {
	Process int
	Qty     int
}

// CapPolicy is the static, per-item pruning bound computed once by the
// analyzer (see computeCaps in package analysis). It never affects correctness, only
// which launches the candidate generator is willing to try.
type CapPolicy struct {
	// LimitingItem is the item id anchoring the policy, or -1 if the
	// reachable subgraph was empty (no caps apply to anything).
	LimitingItem int
	// LimitingInitialStock is S0 in absolute-cap regime, or the sentinel -1
	// when the policy operates in factor regime instead.
	LimitingInitialStock int
	// AbsCap[i] is the absolute stock ceiling for item i in absolute-cap
	// regime. A negative value means "uncapped" regardless of regime.
	AbsCap []int
	// Factor[i] is net[i]/net[L] in factor regime. A negative value means
	// "uncapped" regardless of regime.
	Factor []decimal.Decimal
}

// FactorRegime reports whether the policy operates in factor regime (true)
// or absolute-cap regime (false).
func (c CapPolicy) FactorRegime() bool {
	return c.LimitingInitialStock < 0
}

// OverCap reports whether item i's current stock already exceeds its cap,
// given the current stock of the limiting item (only consulted in factor
// regime; absolute regime ignores it).
func (c CapPolicy) OverCap(i int, stocks []int, limitingStock int) bool {
	if c.FactorRegime() {
		f := c.Factor[i]
		if f.IsNegative() {
			return false
		}
		limit := decimal.NewFromInt(int64(limitingStock)).Mul(f)
		return decimal.NewFromInt(int64(stocks[i])).GreaterThan(limit)
	}
	absCap := c.AbsCap[i]
	if absCap < 0 {
		return false
	}
	return stocks[i] > absCap
}

// CapBlocked reports whether every result item of proc is already over cap,
// which is the definition of "cap-blocked" from the spec. A process with no
// results is never cap-blocked.
func (c CapPolicy) CapBlocked(proc Process, stocks []int) bool {
	if len(proc.Results) == 0 {
		return false
	}
	limitingStock := 0
	if c.LimitingItem >= 0 {
		limitingStock = stocks[c.LimitingItem]
	}
	for _, r := range proc.Results {
		if !c.OverCap(r.Item, stocks, limitingStock) {
			return false
		}
	}
	return true
}

// Config is the frozen, analyzed configuration handed to the simulator and
// the search. It is built once per invocation and never mutated afterward.
type Config struct {
	InitialStocks []int
	Processes     []Process
	OptimizeKeys  []string

	// Dist[i] is the production distance of item i from the primary
	// objective, or -1 if the item is unreached.
	Dist []int

	NeedersByItem [][]NeederRef
	MaxStocks     CapPolicy

	IDToName []string
	NameToID map[string]int
}

// OptimizingTime reports whether "time" is the sole optimization objective.
func (c *Config) OptimizingTime() bool {
	return len(c.OptimizeKeys) == 1 && c.OptimizeKeys[0] == "time"
}

// Goal returns the first non-"time" optimization key, and whether one
// exists. When OptimizingTime is true there is no goal item.
func (c *Config) Goal() (string, bool) {
	for _, k := range c.OptimizeKeys {
		if k != "time" {
			return k, true
		}
	}
	return "", false
}

// NumItems is the number of distinct item ids assigned by the analyzer.
func (c *Config) NumItems() int {
	return len(c.IDToName)
}
