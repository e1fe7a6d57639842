// Package output formats stocks and traces for the CLI front-ends, keeping
// krpsim and krpsim_verif byte-compatible on their shared final-stock
// rendering.
package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/brenaudon/krpsim/pkg/domain/model"
)

// Stocks writes one "<name>:<qty>" line per item, sorted by name so runs
// are diffable regardless of internal item id assignment order.
func Stocks(w io.Writer, cfg *model.Config, stocks []int) {
	names := make([]string, len(cfg.IDToName))
	copy(names, cfg.IDToName)
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s:%d\n", name, stocks[cfg.NameToID[name]])
	}
}

// Trace writes the "Simulation trace:" header followed by one
// "<cycle>:<process-name>" line per launch, then the total cycle count.
func Trace(w io.Writer, cfg *model.Config, c *model.Candidate) {
	fmt.Fprintln(w, "Simulation trace:")
	for _, entry := range c.Trace {
		fmt.Fprintf(w, "%d:%s\n", entry.Cycle, cfg.Processes[entry.Process].Name)
	}
	fmt.Fprintf(w, "Total cycles:%d\n", c.Cycle)
}
