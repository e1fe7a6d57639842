package commands

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/brenaudon/krpsim/pkg/infrastructure/config"
	"github.com/brenaudon/krpsim/pkg/infrastructure/verify"
)

// VerifyConfig holds configuration for the verify (krpsim_verif) command.
type VerifyConfig struct {
	ConfigFile string
	TraceFile  string
}

// VerifyCommand replays a trace file against a configuration.
type VerifyCommand struct {
	config VerifyConfig
}

// NewVerifyCommand creates a new verify command with the given configuration.
func NewVerifyCommand(cfg VerifyConfig) *VerifyCommand {
	return &VerifyCommand{config: cfg}
}

// Execute runs the verify command.
func (c *VerifyCommand) Execute(ctx context.Context) error {
	cf, err := os.Open(c.config.ConfigFile)
	if err != nil {
		return fmt.Errorf("verify: open config: %w", err)
	}
	defer cf.Close()

	raw, err := config.Parse(cf)
	if err != nil {
		return fmt.Errorf("verify: parse config: %w", err)
	}

	tf, err := os.Open(c.config.TraceFile)
	if err != nil {
		return fmt.Errorf("verify: open trace: %w", err)
	}
	defer tf.Close()

	result, err := verify.Run(raw, tf)
	if err != nil {
		return err
	}

	fmt.Printf("Total cycles:%d\n", result.Cycle)
	fmt.Println("Final stocks:")
	names := make([]string, 0, len(result.Stocks))
	for name := range result.Stocks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s:%d\n", name, result.Stocks[name])
	}

	return nil
}
