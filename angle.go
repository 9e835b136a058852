// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.17
//

package units

import (
	"fmt"
	"math"
)

// ------------------------------------
// Mini functions
// ------------------------------------

func sq(x float64) float64 {
	return x * x
}

func ToDeg(rad float64) float64 {
	return rad / math.Pi * 180.0
}

func ToRad(deg float64) float64 {
	return deg / 180.0 * math.Pi
}

// Values this large are first brought near zero with an exact fmod by 2π,
// which both reductions below are periodic in. Otherwise the loops would
// never terminate for huge inputs.
const reduceLimit = 4 * math.Pi

// Fold a latitude back into [-π/2, π/2] by whole steps of π.
// 100° becomes -80°, not 80°.
func normalizeLatitude(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if math.Abs(v) > reduceLimit {
		v = math.Mod(v, 2*math.Pi)
	}
	for {
		switch {
		case v > math.Pi/2:
			v -= math.Pi
		case v < -math.Pi/2:
			v += math.Pi
		default:
			return v
		}
	}
}

// Wrap a longitude into (-π, π] by whole turns. -π itself becomes π.
func normalizeLongitude(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if math.Abs(v) > reduceLimit {
		v = math.Mod(v, 2*math.Pi)
	}
	for {
		switch {
		case v > math.Pi:
			v -= 2 * math.Pi
		case v < -math.Pi:
			v += 2 * math.Pi
		case v == -math.Pi:
			return math.Pi
		default:
			return v
		}
	}
}

//-------------------------------------------------------------------
// Angle
//-------------------------------------------------------------------

// Angle is stored in radians and is never normalized.
type Angle struct{ magnitude }

func NewAngle(rad float64) Angle         { return Angle{magnitude(rad)} }
func AngleFromRadians(rad float64) Angle { return NewAngle(rad) }
func AngleFromDegrees(deg float64) Angle { return NewAngle(ToRad(deg)) }

func (Angle) BaseSymbol() string               { return "radians" }
func (Angle) withValue(v float64) Angle        { return NewAngle(v) }
func (a Angle) String() string                 { return format(a) }
func (a Angle) PrefixedString(p Prefix) string { return formatPrefixed(a, p) }

func (a Angle) Radians() float64 { return a.Value() }
func (a Angle) Degrees() float64 { return ToDeg(a.Value()) }

//-------------------------------------------------------------------
// Latitude
//-------------------------------------------------------------------

// Latitude is stored in radians, always within [-π/2, π/2].
// Every constructor, including the generic arithmetic, folds the value back into range.
type Latitude struct{ magnitude }

func NewLatitude(rad float64) Latitude         { return Latitude{magnitude(normalizeLatitude(rad))} }
func LatitudeFromRadians(rad float64) Latitude { return NewLatitude(rad) }
func LatitudeFromDegrees(deg float64) Latitude { return NewLatitude(ToRad(deg)) }

func (Latitude) BaseSymbol() string           { return "φ" }
func (Latitude) withValue(v float64) Latitude { return NewLatitude(v) }

// PrefixedString prints the magnitude in radians, unlike String which prints degrees.
func (l Latitude) PrefixedString(p Prefix) string {
	return formatPrefixed(l, p)
}

func (l Latitude) String() string {
	return fmt.Sprintf("%.6f%s", l.Degrees(), l.BaseSymbol())
}

func (l Latitude) Radians() float64 { return l.Value() }
func (l Latitude) Degrees() float64 { return ToDeg(l.Value()) }

//-------------------------------------------------------------------
// Longitude
//-------------------------------------------------------------------

// Longitude is stored in radians, always within (-π, π].
type Longitude struct{ magnitude }

func NewLongitude(rad float64) Longitude         { return Longitude{magnitude(normalizeLongitude(rad))} }
func LongitudeFromRadians(rad float64) Longitude { return NewLongitude(rad) }
func LongitudeFromDegrees(deg float64) Longitude { return NewLongitude(ToRad(deg)) }

func (Longitude) BaseSymbol() string            { return "λ" }
func (Longitude) withValue(v float64) Longitude { return NewLongitude(v) }

// PrefixedString prints the magnitude in radians, unlike String which prints degrees.
func (l Longitude) PrefixedString(p Prefix) string {
	return formatPrefixed(l, p)
}

func (l Longitude) String() string {
	return fmt.Sprintf("%.6f%s", l.Degrees(), l.BaseSymbol())
}

func (l Longitude) Radians() float64 { return l.Value() }
func (l Longitude) Degrees() float64 { return ToDeg(l.Value()) }
