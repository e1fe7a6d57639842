package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/brenaudon/krpsim/pkg/interfaces/cli/commands"
)

func main() {
	var (
		tuningFile = flag.String("tuning", "", "Path to a YAML search-parameter overrides file")
		seed       = flag.Int64("seed", 0, "RNG seed override (0 keeps the compiled/tuning default)")
		verbose    = flag.Bool("verbose", false, "Enable verbose output")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) > 2 {
		// flag.Parse stops at the first positional argument; parse again
		// so flags may also follow the two positional arguments.
		positional := args[:2:2]
		_ = flag.CommandLine.Parse(args[2:])
		args = append(positional, flag.Args()...)
	}
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: krpsim <config-file> <delay-in-seconds> [--tuning file] [--seed n] [--verbose]")
		os.Exit(1)
	}

	delay, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid delay %q: %v\n", args[1], err)
		os.Exit(1)
	}

	cfg := commands.SimulateConfig{
		ConfigFile: args[0],
		DelaySecs:  delay,
		TuningFile: *tuningFile,
		Seed:       *seed,
		Verbose:    *verbose,
	}

	cmd := commands.NewSimulateCommand(cfg)
	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
