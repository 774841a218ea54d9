// SPDX-License-Identifier: MIT
//
// File: arena.go
// Role: the single allocation backing every State of one search.
//
// The arena owns the mapping arrays, the depth-stamped frontier arrays, the
// MCS exhaustion stamps, the query ordering and the MCS watermark. States hold
// a pointer to it plus their own counters. Buffers are carved out of two slabs
// that are recycled through a sync.Pool once the root is released.

package vf2

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/dstoeckel/ball/graph"
)

// slab is the pooled backing storage of an arena.
type slab struct {
	ids    []NodeID
	stamps []int32
}

var slabPool = sync.Pool{New: func() any { return new(slab) }}

type arena struct {
	q, t   graph.Accessor
	n1, n2 int

	core1 []NodeID // query → target, NullNode if unmapped
	core2 []NodeID // target → query, NullNode if unmapped

	// depth stamps; 0 means "not in the set"
	in1, out1 []int32
	in2, out2 []int32
	exhausted []int32 // query side, MCS only

	order []NodeID // query nodes in enumeration order
	pos   []int32  // query node → index in order

	live    int // coreLen of the deepest committed state
	longest int // best mapping size seen by any state (MCS watermark)

	nodeCmp graph.Comparator
	edgeCmp graph.Comparator
	induced bool

	buf      *slab
	released bool
}

// newArena sizes all buffers for q and t. Sizing failures are returned as
// ErrGraphTooLarge or ErrOutOfMemory; nothing else in a search allocates
// beyond State headers.
func newArena(q, t graph.Accessor, ord Ordering, cfg stateConfig) (a *arena, err error) {
	n1, n2 := q.NodeCount(), t.NodeCount()
	if n1 < 0 || n2 < 0 || n1 > MaxNodes || n2 > MaxNodes {
		return nil, fmt.Errorf("newArena(%d,%d): %w", n1, n2, ErrGraphTooLarge)
	}
	// ids: core1 + order (n1), core2 (n2); stamps: in1 out1 exhausted pos (n1), in2 out2 (n2)
	idsLen := 2*int64(n1) + int64(n2)
	stampsLen := 4*int64(n1) + 2*int64(n2)
	if idsLen > math.MaxInt || stampsLen > math.MaxInt {
		return nil, fmt.Errorf("newArena(%d,%d): %w", n1, n2, ErrGraphTooLarge)
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				a, err = nil, fmt.Errorf("newArena(%d,%d): %v: %w", n1, n2, r, ErrOutOfMemory)
				return
			}
			panic(r)
		}
	}()

	buf := slabPool.Get().(*slab)
	buf.ids = resize(buf.ids, int(idsLen))
	buf.stamps = resize(buf.stamps, int(stampsLen))

	a = &arena{
		q: q, t: t, n1: n1, n2: n2,
		nodeCmp: cfg.nodeCmp, edgeCmp: cfg.edgeCmp, induced: cfg.induced,
		buf: buf,
	}
	ids, st := buf.ids, buf.stamps
	a.core1, ids = ids[:n1:n1], ids[n1:]
	a.order, ids = ids[:n1:n1], ids[n1:]
	a.core2 = ids[:n2:n2]
	a.in1, st = st[:n1:n1], st[n1:]
	a.out1, st = st[:n1:n1], st[n1:]
	a.exhausted, st = st[:n1:n1], st[n1:]
	a.pos, st = st[:n1:n1], st[n1:]
	a.in2, st = st[:n2:n2], st[n2:]
	a.out2 = st[:n2:n2]

	for i := range a.core1 {
		a.core1[i] = NullNode
	}
	for i := range a.core2 {
		a.core2[i] = NullNode
	}
	copy(a.order, ord.nodes)
	copy(a.pos, ord.pos)

	return a, nil
}

// resize returns s with length n and zeroed contents, reusing capacity.
func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	s = s[:n]
	clear(s)

	return s
}

// release hands the slabs back to the pool. Idempotent.
func (a *arena) release() {
	if a.released {
		return
	}
	a.released = true
	buf := a.buf
	*a = arena{released: true}
	slabPool.Put(buf)
}

func (a *arena) checkLive() {
	if a.released {
		panic(ErrReleased)
	}
}
