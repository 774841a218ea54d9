// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Molecule/Atom/Bond model, bond orders and sentinel errors.

package molgraph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Element is a chemical element symbol such as "C" or "Cl".
type Element string

// WildcardElement in a query atom matches any target element.
const WildcardElement Element = "*"

// BondOrder classifies a bond.
type BondOrder uint8

const (
	// AnyOrder in a query bond matches any target bond.
	AnyOrder BondOrder = iota
	Single
	Double
	Triple
	Aromatic
)

var orderNames = [...]string{"any", "single", "double", "triple", "aromatic"}

// String returns the lower-case name of the order.
func (o BondOrder) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}

	return fmt.Sprintf("BondOrder(%d)", uint8(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o BondOrder) MarshalText() ([]byte, error) {
	if int(o) >= len(orderNames) {
		return nil, fmt.Errorf("MarshalText(%d): %w", uint8(o), ErrBadBondOrder)
	}

	return []byte(orderNames[o]), nil
}

// UnmarshalText accepts an order name (case-insensitive) or its number 0..4.
func (o *BondOrder) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	for i, name := range orderNames {
		if s == name {
			*o = BondOrder(i)
			return nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(orderNames) {
		*o = BondOrder(n)
		return nil
	}

	return fmt.Errorf("UnmarshalText(%q): %w", s, ErrBadBondOrder)
}

// Atom is one named atom. Names are unique within a molecule.
type Atom struct {
	Name    string  `toml:"name" yaml:"name" json:"name"`
	Element Element `toml:"element" yaml:"element" json:"element"`
}

// Bond joins two atoms by name.
type Bond struct {
	A     string    `toml:"a" yaml:"a" json:"a"`
	B     string    `toml:"b" yaml:"b" json:"b"`
	Order BondOrder `toml:"order" yaml:"order" json:"order"`
}

// Molecule is a named atom/bond set. Atom i becomes node i of Graph.
type Molecule struct {
	Name  string `toml:"name" yaml:"name" json:"name"`
	Atoms []Atom `toml:"atoms" yaml:"atoms" json:"atoms"`
	Bonds []Bond `toml:"bonds" yaml:"bonds" json:"bonds"`
}

// AtomPair is one query/target atom correspondence.
type AtomPair struct {
	Query  Atom `json:"query" yaml:"query"`
	Target Atom `json:"target" yaml:"target"`
}

// Sentinel errors.
var (
	// ErrDuplicateAtom indicates two atoms with the same name.
	ErrDuplicateAtom = errors.New("molgraph: duplicate atom name")

	// ErrUnknownAtom indicates a bond naming an atom that does not exist.
	ErrUnknownAtom = errors.New("molgraph: unknown atom")

	// ErrEmptyElement indicates an atom without an element symbol.
	ErrEmptyElement = errors.New("molgraph: empty element")

	// ErrSelfBond indicates a bond from an atom to itself.
	ErrSelfBond = errors.New("molgraph: bond joins an atom to itself")

	// ErrBadBondOrder indicates an unrecognised bond order.
	ErrBadBondOrder = errors.New("molgraph: bad bond order")

	// ErrMappingMismatch indicates a mapping that does not fit the molecules.
	ErrMappingMismatch = errors.New("molgraph: mapping does not fit molecules")
)
