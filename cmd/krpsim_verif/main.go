package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/brenaudon/krpsim/pkg/interfaces/cli/commands"
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: krpsim_verif <config-file> <trace-file>")
		os.Exit(1)
	}

	cfg := commands.VerifyConfig{
		ConfigFile: args[0],
		TraceFile:  args[1],
	}

	cmd := commands.NewVerifyCommand(cfg)
	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
