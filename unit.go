// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.17
//

package units

import (
	"cmp"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats/scalar"
)

// Quantity is the capability every quantity type satisfies. Q is the concrete type itself,
// so generic arithmetic never mixes two different quantities.
//
// The set of implementations is closed to this package.
type Quantity[Q any] interface {
	fmt.Stringer

	// Value returns the magnitude in the base unit.
	Value() float64
	// In returns the magnitude divided by the prefix factor.
	In(p Prefix) float64
	// BaseSymbol returns the symbol of the base unit ("m", "kg", "N", ...).
	BaseSymbol() string

	withValue(v float64) Q
	basePrefix() Prefix
}

// Number is a plain scalar accepted by Mul and Div.
type Number interface {
	constraints.Integer | constraints.Float
}

// magnitude is the value embedded by every quantity type, always in the base unit.
type magnitude float64

func (s magnitude) Value() float64 {
	return float64(s)
}

func (s magnitude) In(p Prefix) float64 {
	return convertToPrefix(p, 1, float64(s))
}

// Base units are unprefixed unless the type says otherwise (Mass).
func (magnitude) basePrefix() Prefix {
	return Unity
}

//-------------------------------------------------------------------
// Construction
//-------------------------------------------------------------------

// New returns a Q holding v in its base unit.
func New[Q Quantity[Q]](v float64) Q {
	var zero Q
	return zero.withValue(v)
}

// FromPrefix returns a Q holding v given in prefixed units, e.g. FromPrefix[Length](3, Kilo).
// For a type whose base unit is itself prefixed (kg) the base prefix is divided out.
func FromPrefix[Q Quantity[Q]](v float64, p Prefix) Q {
	var zero Q
	return zero.withValue(v * p.Factor() / zero.basePrefix().Factor())
}

//-------------------------------------------------------------------
// Arithmetic
//-------------------------------------------------------------------

func Add[Q Quantity[Q]](a, b Q) Q {
	return New[Q](a.Value() + b.Value())
}

func Sub[Q Quantity[Q]](a, b Q) Q {
	return New[Q](a.Value() - b.Value())
}

// Mul scales q by a plain number.
func Mul[Q Quantity[Q], N Number](q Q, k N) Q {
	return New[Q](q.Value() * float64(k))
}

// Div divides q by a plain number. Division by zero follows IEEE-754.
func Div[Q Quantity[Q], N Number](q Q, k N) Q {
	return New[Q](q.Value() / float64(k))
}

func Neg[Q Quantity[Q]](q Q) Q {
	return New[Q](-q.Value())
}

func Abs[Q Quantity[Q]](q Q) Q {
	return New[Q](math.Abs(q.Value()))
}

// Sum adds up qs. The sum of nothing is the zero quantity.
func Sum[Q Quantity[Q]](qs ...Q) Q {
	var s float64
	for _, q := range qs {
		s += q.Value()
	}
	return New[Q](s)
}

//-------------------------------------------------------------------
// Comparison
//-------------------------------------------------------------------

func Compare[Q Quantity[Q]](a, b Q) int {
	return cmp.Compare(a.Value(), b.Value())
}

// ApproxEqual reports whether a and b agree within tol, absolutely or relatively.
func ApproxEqual[Q Quantity[Q]](a, b Q, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(a.Value(), b.Value(), tol, tol)
}

// Sort sorts qs in ascending order of magnitude.
func Sort[Q Quantity[Q]](qs []Q) {
	slices.SortFunc(qs, Compare[Q])
}

// Max panics if qs is empty.
func Max[Q Quantity[Q]](qs ...Q) Q {
	return slices.MaxFunc(qs, Compare[Q])
}

// Min panics if qs is empty.
func Min[Q Quantity[Q]](qs ...Q) Q {
	return slices.MinFunc(qs, Compare[Q])
}

//-------------------------------------------------------------------
// Formatting
//-------------------------------------------------------------------

func format[Q Quantity[Q]](q Q) string {
	return fmt.Sprintf("%.1f%s", q.Value(), q.BaseSymbol())
}

func formatPrefixed[Q Quantity[Q]](q Q, p Prefix) string {
	return fmt.Sprintf("%.1f%s%s", q.In(p), p, q.BaseSymbol())
}
