package config

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	reStock    = regexp.MustCompile(`^([^:#\s]+)\s*:\s*(\d+)$`)
	reProcess  = regexp.MustCompile(`^([^:]+?)\s*:\s*\(([^)]*)\)\s*:\s*\(([^)]*)\)\s*:\s*(\d+)$`)
	reOptimize = regexp.MustCompile(`(?i)^optimize\s*:\s*\(([^)]*)\)$`)
)

// section tracks where the parser is in the stocks -> processes -> optimize
// grammar. Transitions happen implicitly: a line shaped like the next
// section pushes the parser forward, mirroring the reference parser's
// fallthrough switch.
type section int

const (
	sectionStocks section = iota
	sectionProcesses
	sectionOptimize
)

// Parse reads the krpsim configuration grammar from r. Syntax errors report
// the 1-based line number and the offending text.
func Parse(r io.Reader) (*RawConfig, error) {
	cfg := &RawConfig{}
	sec := sectionStocks

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := stripComment(scanner.Text())
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if sec == sectionStocks {
			if m := reStock.FindStringSubmatch(line); m != nil {
				qty, err := strconv.Atoi(m[2])
				if err != nil {
					return nil, fmt.Errorf("line %d: bad stock quantity %q: %w", lineno, m[2], err)
				}
				cfg.Stocks = append(cfg.Stocks, RawItem{Name: m[1], Qty: qty})
				continue
			}
			sec = sectionProcesses
		}

		if sec == sectionProcesses {
			if m := reProcess.FindStringSubmatch(line); m != nil {
				proc, err := parseProcess(m, lineno)
				if err != nil {
					return nil, err
				}
				cfg.Processes = append(cfg.Processes, proc)
				continue
			}
			sec = sectionOptimize
		}

		if sec == sectionOptimize {
			m := reOptimize.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("line %d: expected optimize section, got %q", lineno, line)
			}
			for _, tok := range splitItems(m[1]) {
				cfg.OptimizeKeys = append(cfg.OptimizeKeys, strings.TrimSpace(tok))
			}
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	if len(cfg.OptimizeKeys) == 0 {
		return nil, fmt.Errorf("missing optimize section")
	}

	return cfg, nil
}

func parseProcess(m []string, lineno int) (RawProcess, error) {
	name := strings.TrimSpace(m[1])
	needs, err := parseItemList(m[2])
	if err != nil {
		return RawProcess{}, fmt.Errorf("line %d: %w", lineno, err)
	}
	results, err := parseItemList(m[3])
	if err != nil {
		return RawProcess{}, fmt.Errorf("line %d: %w", lineno, err)
	}
	delay, err := strconv.Atoi(m[4])
	if err != nil {
		return RawProcess{}, fmt.Errorf("line %d: bad delay %q: %w", lineno, m[4], err)
	}
	return RawProcess{Name: name, Needs: needs, Results: results, Delay: delay}, nil
}

func parseItemList(list string) ([]RawItem, error) {
	var items []RawItem
	for _, tok := range splitItems(list) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		item, err := parseItem(tok)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func parseItem(tok string) (RawItem, error) {
	colon := strings.Index(tok, ":")
	if colon < 0 {
		return RawItem{}, fmt.Errorf("bad item (no colon): %q", tok)
	}
	name := strings.TrimSpace(tok[:colon])
	if name == "" {
		return RawItem{}, fmt.Errorf("bad item (empty name): %q", tok)
	}
	qtyStr := strings.TrimSpace(tok[colon+1:])
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return RawItem{}, fmt.Errorf("bad item quantity %q: %w", tok, err)
	}
	return RawItem{Name: name, Qty: qty}, nil
}

func splitItems(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ";")
}

// stripComment removes anything from the first '#' onward.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}
