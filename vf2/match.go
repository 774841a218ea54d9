// SPDX-License-Identifier: MIT
//
// File: match.go
// Role: depth-first drivers (Match, MatchAll, Maximize), driver options and
// the Search wrapper that scopes an arena to one call.
//
// Every committed child is undone through a deferred Backtrack, so an early
// return (first match, visitor stop, panic) leaves the arena exactly as the
// caller handed it over.

package vf2

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/dstoeckel/ball/graph"
)

// Visitor receives each solution found by MatchAll. Returning true stops the search.
// The mapping is owned by the visitor.
type Visitor func(m Mapping) (stop bool)

// Option configures a driver call.
type Option func(r *runner)

// WithLogger logs search start and finish at debug level.
// Panics if l is nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("vf2: WithLogger(nil)")
	}

	return func(r *runner) { r.log = l }
}

// WithHooks installs search instrumentation. Panics if h is nil.
func WithHooks(h Hooks) Option {
	if h == nil {
		panic("vf2: WithHooks(nil)")
	}

	return func(r *runner) { r.hooks = h }
}

// WithPrune adds a caller predicate to IsDead; a state for which it returns
// true is not expanded. Node budgets and deadlines are layered on this way.
// Panics if fn is nil.
func WithPrune(fn func(s *State) bool) Option {
	if fn == nil {
		panic("vf2: WithPrune(nil)")
	}

	return func(r *runner) { r.prune = fn }
}

// runner carries driver options through the recursion.
type runner struct {
	log   *log.Logger
	hooks Hooks
	prune func(*State) bool
	start time.Time
}

func newRunner(opts []Option) *runner {
	r := &runner{hooks: NoopHooks{}}
	for _, opt := range opts {
		opt(r)
	}
	r.start = time.Now()

	return r
}

func (r *runner) begin(driver string, s *State) {
	if r.log == nil {
		return
	}
	q, t := s.Graphs()
	r.log.Debug("search started", "driver", driver, "kind", s.Kind(),
		"query", q.NodeCount(), "target", t.NodeCount(), "depth", s.Depth())
}

func (r *runner) end(driver string, keyvals ...any) {
	if r.log == nil {
		return
	}
	kv := append([]any{"driver", driver, "elapsed", time.Since(r.start)}, keyvals...)
	r.log.Debug("search finished", kv...)
}

func (r *runner) dead(s *State) bool {
	return s.IsDead() || (r.prune != nil && r.prune(s))
}

func (r *runner) feasible(s *State, p Pair) bool {
	ok := s.IsFeasible(p.Query, p.Target)
	r.hooks.OnFeasibility(ok)

	return ok
}

// candidates yields the pairs a driver branches on. Kinds whose goal maps
// every query node only need the first query node NextPair offers.
func candidates(s *State, yield func(Pair) bool) {
	pivot := NullNode
	for p, ok := s.NextPair(NullPair); ok; p, ok = s.NextPair(p) {
		if s.pol.pivots() {
			if pivot == NullNode {
				pivot = p.Query
			} else if p.Query != pivot {
				return
			}
		}
		if !yield(p) {
			return
		}
	}
}

// descend commits p on a child of s, runs fn on it and undoes it.
func descend[T any](r *runner, s *State, p Pair, fn func(*State) T) T {
	child := s.Extend(p.Query, p.Target)
	defer func() {
		child.Backtrack()
		r.hooks.OnBacktrack(child.Depth())
	}()

	return fn(child)
}

// Match returns the first solution reachable from s.
func Match(s *State, opts ...Option) (Mapping, bool) {
	r := newRunner(opts)
	r.begin("match", s)
	m := r.match(s)
	r.end("match", "found", m != nil, "size", len(m))

	return m, m != nil
}

// match returns nil when no solution is reachable.
func (r *runner) match(s *State) (m Mapping) {
	r.hooks.OnState(s.Depth())
	if s.IsGoal() {
		m = s.CoreSet()
		r.hooks.OnSolution(len(m))
		return m
	}
	if r.dead(s) {
		return nil
	}
	candidates(s, func(p Pair) bool {
		if !r.feasible(s, p) {
			return true
		}
		m = descend(r, s, p, r.match)
		return m == nil
	})

	return m
}

// MatchAll visits every solution reachable from s and returns how many were
// visited. The search stops early when visit returns true.
func MatchAll(s *State, visit Visitor, opts ...Option) int {
	r := newRunner(opts)
	r.begin("match-all", s)
	var n int
	r.matchAll(s, visit, &n)
	r.end("match-all", "solutions", n)

	return n
}

func (r *runner) matchAll(s *State, visit Visitor, n *int) (stop bool) {
	r.hooks.OnState(s.Depth())
	if s.IsGoal() {
		m := s.CoreSet()
		*n++
		r.hooks.OnSolution(len(m))
		return visit != nil && visit(m)
	}
	if r.dead(s) {
		return false
	}
	candidates(s, func(p Pair) bool {
		if !r.feasible(s, p) {
			return true
		}
		stop = descend(r, s, p, func(c *State) bool { return r.matchAll(c, visit, n) })
		return !stop
	})

	return stop
}

// Maximize returns the largest mapping reachable from s. It records a new
// best whenever a state's CoreLen exceeds the previous one and stops at the
// first goal; otherwise it runs until IsDead has pruned every branch.
// The result is never nil.
func Maximize(s *State, opts ...Option) Mapping {
	r := newRunner(opts)
	r.begin("maximize", s)
	best := s.CoreSet()
	r.maximize(s, &best)
	r.end("maximize", "size", len(best), "watermark", s.LongestKnown())

	return best
}

func (r *runner) maximize(s *State, best *Mapping) (done bool) {
	r.hooks.OnState(s.Depth())
	if s.CoreLen() > len(*best) {
		*best = s.CoreSet()
		r.hooks.OnSolution(len(*best))
	}
	if s.IsGoal() {
		return true
	}
	if r.dead(s) {
		return false
	}
	candidates(s, func(p Pair) bool {
		if !r.feasible(s, p) {
			return true
		}
		done = descend(r, s, p, func(c *State) bool { return r.maximize(c, best) })
		return !done
	})

	return done
}

// Search builds a root state, runs fn on it and releases the arena on every
// exit path. Construction errors are returned unchanged; fn's error is
// returned as is.
func Search(kind Kind, q, t graph.Accessor, sortNodes bool, stateOpts []StateOption, fn func(*State) error) error {
	s, err := NewState(kind, q, t, sortNodes, stateOpts...)
	if err != nil {
		return err
	}
	defer s.Release()

	return fn(s)
}
