// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.17
//

package units

// FLOP counts floating point operations.
type FLOP struct{ magnitude }

func NewFLOP(n float64) FLOP { return FLOP{magnitude(n)} }

func (FLOP) BaseSymbol() string               { return "FLOP" }
func (FLOP) withValue(v float64) FLOP         { return NewFLOP(v) }
func (f FLOP) String() string                 { return format(f) }
func (f FLOP) PrefixedString(p Prefix) string { return formatPrefixed(f, p) }

func (f FLOP) FLOPs() float64 { return f.Value() }
