package model

import "testing"

func TestCandidateRunningHeapOrdersByFinish(t *testing.T) {
	var c Candidate
	c.PushRunning(5, 1)
	c.PushRunning(2, 2)
	c.PushRunning(8, 3)

	finish, pid := c.PopRunning()
	if finish != 2 || pid != 2 {
		t.Fatalf("expected earliest finish (2,2), got (%d,%d)", finish, pid)
	}
	finish, pid = c.PopRunning()
	if finish != 5 || pid != 1 {
		t.Fatalf("expected next finish (5,1), got (%d,%d)", finish, pid)
	}
}

func TestCandidateCloneIsIndependent(t *testing.T) {
	cfg := &Config{InitialStocks: []int{3, 0}, IDToName: []string{"a", "b"}}
	c := NewCandidate(cfg)
	c.PushRunning(10, 0)
	c.Trace = append(c.Trace, TraceEntry{Cycle: 0, Process: 0})

	clone := c.Clone()
	clone.Stocks[0] = 99
	clone.Trace[0].Cycle = 42
	clone.PushRunning(20, 1)

	if c.Stocks[0] == 99 {
		t.Fatal("mutating the clone's stocks affected the original")
	}
	if c.Trace[0].Cycle == 42 {
		t.Fatal("mutating the clone's trace affected the original")
	}
	if c.RunningLen() != 1 {
		t.Fatalf("expected original running length unchanged at 1, got %d", c.RunningLen())
	}
}
