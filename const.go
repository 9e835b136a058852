// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.17
//

package units

import (
	"math"

	"golang.org/x/exp/slices"
)

const (
	StandardGravity = 9.80665 // Standard gravitational acceleration [m/s^2]
	EarthRadiusKm   = 6373.0  // Earth's radius used for great-circle distance [km]
)

// Gravity returns the standard gravitational acceleration.
func Gravity() Acceleration {
	return NewAcceleration(StandardGravity)
}

// EarthRadius returns the spherical Earth radius used by Coordinate.
func EarthRadius() Length {
	return LengthFromKilometers(EarthRadiusKm)
}

//-------------------------------------------------------------------
// Prefix
//-------------------------------------------------------------------

// Prefix is an SI scale multiplier from 10^-24 to 10^24.
type Prefix int

const (
	Yocto Prefix = iota
	Zepto
	Atto
	Femto
	Pico
	Nano
	Micro
	Milli
	Centi
	Deci
	Unity
	Deca
	Hecto
	Kilo
	Mega
	Giga
	Tera
	Peta
	Exa
	Zetta
	Yotta
)

var prefixTable = [...]struct {
	factor float64
	label  string
}{
	Yocto: {1e-24, "y"},
	Zepto: {1e-21, "z"},
	Atto:  {1e-18, "a"},
	Femto: {1e-15, "f"},
	Pico:  {1e-12, "p"},
	Nano:  {1e-9, "n"},
	Micro: {1e-6, "u"},
	Milli: {1e-3, "m"},
	Centi: {1e-2, "c"},
	Deci:  {1e-1, "d"},
	Unity: {1, ""},
	Deca:  {1e1, "da"},
	Hecto: {1e2, "h"},
	Kilo:  {1e3, "k"},
	Mega:  {1e6, "M"},
	Giga:  {1e9, "G"},
	Tera:  {1e12, "T"},
	Peta:  {1e15, "P"},
	Exa:   {1e18, "E"},
	Zetta: {1e21, "Z"},
	Yotta: {1e24, "Y"},
}

var allPrefixes = []Prefix{
	Yocto, Zepto, Atto, Femto, Pico, Nano, Micro, Milli, Centi, Deci, Unity,
	Deca, Hecto, Kilo, Mega, Giga, Tera, Peta, Exa, Zetta, Yotta,
}

// Prefixes returns every prefix in ascending order of factor.
func Prefixes() []Prefix {
	return slices.Clone(allPrefixes)
}

func (p Prefix) valid() bool {
	return p >= Yocto && p <= Yotta
}

// Factor returns the multiplier of the prefix, or NaN if p is not one of the defined constants.
func (p Prefix) Factor() float64 {
	if !p.valid() {
		return math.NaN()
	}
	return prefixTable[p].factor
}

// String returns the short label ("k", "M", "u", ...). Unity has an empty label.
func (p Prefix) String() string {
	if !p.valid() {
		return "?"
	}
	return prefixTable[p].label
}

// Scale a value given in prefixed units to base units.
// power is 2 for areas and 3 for volumes.
func convertToBase(p Prefix, power, v float64) float64 {
	return math.Pow(p.Factor(), power) * v
}

// Scale a value in base units to prefixed units.
func convertToPrefix(p Prefix, power, v float64) float64 {
	return v / math.Pow(p.Factor(), power)
}
