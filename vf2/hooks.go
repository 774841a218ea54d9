// SPDX-License-Identifier: MIT
//
// File: hooks.go
// Role: search instrumentation.

package vf2

import (
	"sync/atomic"
)

// Hooks receives search events from the drivers. Implementations used by
// several concurrent searches must be safe for concurrent use.
type Hooks interface {
	// OnState is called for every state the driver visits.
	OnState(depth int)

	// OnFeasibility is called with the result of every feasibility test.
	OnFeasibility(ok bool)

	// OnBacktrack is called after a committed child is undone.
	OnBacktrack(depth int)

	// OnSolution is called when a goal (or, for Maximize, a new best) is recorded.
	OnSolution(size int)
}

// NoopHooks ignores every event.
type NoopHooks struct{}

func (NoopHooks) OnState(int)        {}
func (NoopHooks) OnFeasibility(bool) {}
func (NoopHooks) OnBacktrack(int)    {}
func (NoopHooks) OnSolution(int)     {}

// Counters tallies search events with atomic counters.
type Counters struct {
	States     atomic.Int64
	Feasible   atomic.Int64
	Infeasible atomic.Int64
	Backtracks atomic.Int64
	Solutions  atomic.Int64
	MaxDepth   atomic.Int64
	BestSize   atomic.Int64
}

// Stats is a point-in-time copy of Counters.
type Stats struct {
	States     int64
	Feasible   int64
	Infeasible int64
	Backtracks int64
	Solutions  int64
	MaxDepth   int64
	BestSize   int64
}

// OnState implements Hooks.
func (c *Counters) OnState(depth int) {
	c.States.Add(1)
	storeMax(&c.MaxDepth, int64(depth))
}

// OnFeasibility implements Hooks.
func (c *Counters) OnFeasibility(ok bool) {
	if ok {
		c.Feasible.Add(1)
		return
	}
	c.Infeasible.Add(1)
}

// OnBacktrack implements Hooks.
func (c *Counters) OnBacktrack(int) { c.Backtracks.Add(1) }

// OnSolution implements Hooks.
func (c *Counters) OnSolution(size int) {
	c.Solutions.Add(1)
	storeMax(&c.BestSize, int64(size))
}

// Snapshot returns the current values.
func (c *Counters) Snapshot() Stats {
	return Stats{
		States:     c.States.Load(),
		Feasible:   c.Feasible.Load(),
		Infeasible: c.Infeasible.Load(),
		Backtracks: c.Backtracks.Load(),
		Solutions:  c.Solutions.Load(),
		MaxDepth:   c.MaxDepth.Load(),
		BestSize:   c.BestSize.Load(),
	}
}

func storeMax(v *atomic.Int64, x int64) {
	for {
		cur := v.Load()
		if x <= cur || v.CompareAndSwap(cur, x) {
			return
		}
	}
}

var (
	_ Hooks = NoopHooks{}
	_ Hooks = (*Counters)(nil)
)
