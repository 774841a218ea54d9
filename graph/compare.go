// SPDX-License-Identifier: MIT
//
// File: compare.go
// Role: attribute compatibility capabilities used by the matcher.

package graph

// Comparator decides whether a query attribute is compatible with a target
// attribute. It is always called as Compatible(queryAttr, targetAttr) and
// need not be symmetric.
type Comparator interface {
	Compatible(query, target any) bool
}

// CompareFunc adapts an ordinary function to Comparator.
type CompareFunc func(query, target any) bool

// Compatible calls f(query, target).
func (f CompareFunc) Compatible(query, target any) bool { return f(query, target) }

// AnyAttrs accepts every pair of attributes.
var AnyAttrs Comparator = CompareFunc(func(_, _ any) bool { return true })

// EqualAttrs accepts attributes that compare equal with ==.
// Non-comparable dynamic types never match instead of panicking.
var EqualAttrs Comparator = CompareFunc(equalAttrs)

func equalAttrs(q, t any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	return q == t
}
