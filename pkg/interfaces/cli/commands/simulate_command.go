package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/brenaudon/krpsim/pkg/application/search"
	"github.com/brenaudon/krpsim/pkg/domain/analysis"
	"github.com/brenaudon/krpsim/pkg/infrastructure/config"
	"github.com/brenaudon/krpsim/pkg/infrastructure/tuning"
	"github.com/brenaudon/krpsim/pkg/interfaces/cli/output"
)

// SimulateConfig holds configuration for the simulate (krpsim) command.
type SimulateConfig struct {
	ConfigFile string
	DelaySecs  float64
	TuningFile string
	Seed       int64
	Verbose    bool
}

// SimulateCommand runs parse -> analyze -> search(budget) -> emit trace.
type SimulateCommand struct {
	config SimulateConfig
}

// NewSimulateCommand creates a new simulate command with the given configuration.
func NewSimulateCommand(cfg SimulateConfig) *SimulateCommand {
	return &SimulateCommand{config: cfg}
}

// Execute runs the simulate command.
func (c *SimulateCommand) Execute(ctx context.Context) error {
	f, err := os.Open(c.config.ConfigFile)
	if err != nil {
		return fmt.Errorf("simulate: open config: %w", err)
	}
	defer f.Close()

	raw, err := config.Parse(f)
	if err != nil {
		return fmt.Errorf("simulate: parse config: %w", err)
	}

	cfg, err := analysis.Analyze(raw)
	if err != nil {
		return fmt.Errorf("simulate: analyze config: %w", err)
	}

	params := search.DefaultParams()
	if c.config.TuningFile != "" {
		tf, err := os.Open(c.config.TuningFile)
		if err != nil {
			return fmt.Errorf("simulate: open tuning file: %w", err)
		}
		params, err = tuning.Load(tf, params)
		tf.Close()
		if err != nil {
			return err
		}
	}
	if c.config.Seed != 0 {
		params.Seed = c.config.Seed
	}

	if c.config.Verbose {
		fmt.Printf("🧬 Running search: population=%d maxIter=%d budget=%.1fs seed=%d\n",
			params.PopulationSize, params.MaxIter, c.config.DelaySecs, params.Seed)
	}

	budget := time.Duration(c.config.DelaySecs * float64(time.Second))
	best := search.Run(ctx, cfg, params, budget)

	fmt.Println("Initial stocks:")
	output.Stocks(os.Stdout, cfg, cfg.InitialStocks)
	output.Trace(os.Stdout, cfg, &best)
	fmt.Println("Final stocks:")
	output.Stocks(os.Stdout, cfg, best.Stocks)

	return nil
}
