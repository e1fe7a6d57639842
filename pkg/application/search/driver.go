package search

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/brenaudon/krpsim/pkg/domain/model"
)

// Run drives the genetic search to completion or until budget elapses,
// whichever comes first, and returns the best candidate seen. It never
// fails: with a zero budget it returns the empty initial candidate.
func Run(ctx context.Context, cfg *model.Config, params Params, budget time.Duration) model.Candidate {
	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	exceeded := func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
		}
		return time.Since(start) > budget
	}

	// best starts as the empty candidate so a zero budget has something to
	// return; the first population leader always replaces it.
	best := model.NewCandidate(cfg)
	haveBest := false

	population := make([]model.Candidate, 0, params.PopulationSize)
	for i := 0; i < params.PopulationSize; i++ {
		if exceeded() {
			break
		}
		population = append(population, Generate(cfg, params, rng, nil, nil, exceeded))
	}

	for iter := 0; iter < params.MaxIter; iter++ {
		if exceeded() {
			break
		}
		if len(population) == 0 {
			break
		}

		sortByScoreDesc(cfg, population, params)

		if !haveBest || Score(cfg, &population[0], params) > Score(cfg, &best, params) {
			best = population[0].Clone()
			haveBest = true
		}

		var p1, p2 *model.Candidate
		p1 = &population[0]
		if len(population) > 1 {
			p2 = &population[1]
		}

		next := make([]model.Candidate, 0, params.PopulationSize)
		childTarget := params.PopulationSize / 2
		for len(next) < childTarget {
			if exceeded() {
				break
			}
			next = append(next, Generate(cfg, params, rng, p1, p2, exceeded))
		}
		for len(next) < params.PopulationSize {
			if exceeded() {
				break
			}
			next = append(next, Generate(cfg, params, rng, nil, nil, exceeded))
		}
		population = next
	}

	return best
}

func sortByScoreDesc(cfg *model.Config, population []model.Candidate, params Params) {
	sort.SliceStable(population, func(i, j int) bool {
		si, sj := Score(cfg, &population[i], params), Score(cfg, &population[j], params)
		if si != sj {
			return si > sj
		}
		return population[i].Cycle < population[j].Cycle
	})
}
