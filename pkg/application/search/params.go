// Package search builds candidate schedules by guided random simulation,
// scores them against the configured objective, and evolves a population of
// candidates under a wall-clock budget.
package search

// Params holds the tunable search parameters. Zero values are not valid
// defaults; use DefaultParams and override individual fields (or apply
// tuning.Overrides on top of it).
type Params struct {
	Alpha          float64
	Beta           float64
	Decay          float64
	MutationRate   float64
	PopulationSize int
	MaxIter        int
	MaxCycles      int
	Seed           int64
}

// DefaultParams returns the compiled-in defaults.
func DefaultParams() Params {
	return Params{
		Alpha:          1.0,
		Beta:           0.1,
		Decay:          0.7,
		MutationRate:   10.0,
		PopulationSize: 100,
		MaxIter:        1000,
		MaxCycles:      50_000,
		Seed:           0,
	}
}
