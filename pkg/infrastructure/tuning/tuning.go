// Package tuning loads an optional YAML document overriding a subset of the
// compiled-in search parameters.
package tuning

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/brenaudon/krpsim/pkg/application/search"
)

// overrides mirrors search.Params but with pointer fields so a document that
// omits a key leaves the corresponding default untouched.
type overrides struct {
	Alpha          *float64 `yaml:"alpha"`
	Beta           *float64 `yaml:"beta"`
	Decay          *float64 `yaml:"decay"`
	MutationRate   *float64 `yaml:"mutationRate"`
	PopulationSize *int     `yaml:"populationSize"`
	MaxIter        *int     `yaml:"maxIter"`
	MaxCycles      *int     `yaml:"maxCycles"`
	Seed           *int64   `yaml:"seed"`
}

// Load reads a YAML overrides document and applies it on top of base,
// returning the merged parameters. A malformed document or an out-of-range
// value is reported as a configuration error before the search starts.
func Load(r io.Reader, base search.Params) (search.Params, error) {
	var o overrides
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&o); err != nil && err != io.EOF {
		return base, fmt.Errorf("tuning: parse overrides: %w", err)
	}

	merged := base
	if o.Alpha != nil {
		merged.Alpha = *o.Alpha
	}
	if o.Beta != nil {
		merged.Beta = *o.Beta
	}
	if o.Decay != nil {
		merged.Decay = *o.Decay
	}
	if o.MutationRate != nil {
		merged.MutationRate = *o.MutationRate
	}
	if o.PopulationSize != nil {
		merged.PopulationSize = *o.PopulationSize
	}
	if o.MaxIter != nil {
		merged.MaxIter = *o.MaxIter
	}
	if o.MaxCycles != nil {
		merged.MaxCycles = *o.MaxCycles
	}
	if o.Seed != nil {
		merged.Seed = *o.Seed
	}

	if err := validate(merged); err != nil {
		return base, err
	}
	return merged, nil
}

func validate(p search.Params) error {
	if p.PopulationSize < 0 {
		return fmt.Errorf("tuning: populationSize must be non-negative, got %d", p.PopulationSize)
	}
	if p.MaxCycles <= 0 {
		return fmt.Errorf("tuning: maxCycles must be positive, got %d", p.MaxCycles)
	}
	if p.MutationRate < 0 || p.MutationRate > 100 {
		return fmt.Errorf("tuning: mutationRate must be within [0,100], got %g", p.MutationRate)
	}
	if p.MaxIter < 0 {
		return fmt.Errorf("tuning: maxIter must be non-negative, got %d", p.MaxIter)
	}
	return nil
}
