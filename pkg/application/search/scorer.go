package search

import (
	"math"

	"github.com/brenaudon/krpsim/pkg/domain/model"
)

// Score computes a finished candidate's fitness. Time-objective
// configurations reward fewer cycles; goal configurations reward the goal
// item's final stock plus a distance-weighted residual of every other item
// still on hand that has a defined distance to the goal.
func Score(cfg *model.Config, c *model.Candidate, params Params) int {
	if cfg.OptimizingTime() {
		if c.Cycle <= 0 {
			return 100000
		}
		return 100000 / c.Cycle
	}

	goalName, ok := cfg.Goal()
	if !ok {
		return 0
	}
	goalID := cfg.NameToID[goalName]

	t := float64(c.Stocks[goalID])
	interm := 0.0
	for i, stock := range c.Stocks {
		if i == goalID || stock <= 0 {
			continue
		}
		d := cfg.Dist[i]
		if d < 0 {
			continue
		}
		interm += math.Pow(params.Decay, float64(d)) * float64(stock)
	}

	return int(params.Alpha*t + params.Beta*interm)
}
