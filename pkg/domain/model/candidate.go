package model

import "container/heap"

// WaitSentinel is the pseudo-choice meaning "advance cycle to the earliest
// in-flight completion". It is never a valid process id.
const WaitSentinel = -1

// TraceEntry is one launch event: process Process was started at Cycle.
type TraceEntry struct {
	Cycle   int
	Process int
}

// runningProcess is one in-flight completion, ordered by Finish ascending.
type runningProcess struct {
	Finish  int
	Process int
}

// runQueue is a container/heap-backed min-heap of runningProcess, ordered by
// finish cycle. No corpus example needed a priority queue of its own, and the
// standard library's container/heap is the idiomatic fit for this candidate-
// local, single-threaded completion queue.
type runQueue []runningProcess

func (q runQueue) Len() int            { return len(q) }
func (q runQueue) Less(i, j int) bool  { return q[i].Finish < q[j].Finish }
func (q runQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *runQueue) Push(x interface{}) { *q = append(*q, x.(runningProcess)) }
func (q *runQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Candidate is one search individual: a partially or fully simulated
// schedule. Stocks and Running are candidate-local; nothing here is shared
// with any other Candidate.
type Candidate struct {
	Cycle   int
	Stocks  []int
	Running runQueue
	Trace   []TraceEntry
}

// NewCandidate seeds an empty candidate from the configuration's initial
// stocks.
func NewCandidate(cfg *Config) Candidate {
	stocks := make([]int, cfg.NumItems())
	copy(stocks, cfg.InitialStocks)
	return Candidate{
		Cycle:   0,
		Stocks:  stocks,
		Running: nil,
		Trace:   nil,
	}
}

// Clone returns a deep, independent copy. Children inherit parents by
// structural copy rather than by shared pointers: each Candidate has a
// single owner (see design notes on shared-ownership parent nodes).
func (c Candidate) Clone() Candidate {
	stocks := make([]int, len(c.Stocks))
	copy(stocks, c.Stocks)
	running := make(runQueue, len(c.Running))
	copy(running, c.Running)
	trace := make([]TraceEntry, len(c.Trace))
	copy(trace, c.Trace)
	return Candidate{Cycle: c.Cycle, Stocks: stocks, Running: running, Trace: trace}
}

// PushRunning schedules a completion at the given finish cycle.
func (c *Candidate) PushRunning(finish, processID int) {
	heap.Push(&c.Running, runningProcess{Finish: finish, Process: processID})
}

// EarliestFinish reports the finish cycle of the soonest completion. Callers
// must check RunningLen first.
func (c *Candidate) EarliestFinish() int {
	return c.Running[0].Finish
}

// RunningLen is the number of processes currently in flight.
func (c *Candidate) RunningLen() int {
	return len(c.Running)
}

// PopRunning removes and returns the soonest completion.
func (c *Candidate) PopRunning() (finish, processID int) {
	top := heap.Pop(&c.Running).(runningProcess)
	return top.Finish, top.Process
}
