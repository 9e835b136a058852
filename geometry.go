// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.17
//

package units

//-------------------------------------------------------------------
// Length
//-------------------------------------------------------------------

// Length is stored in meters.
type Length struct{ magnitude }

func NewLength(m float64) Length              { return Length{magnitude(m)} }
func LengthFromMeters(m float64) Length       { return NewLength(m) }
func LengthFromMillimeters(mm float64) Length { return NewLength(mm / 1000) }
func LengthFromCentimeters(cm float64) Length { return NewLength(cm / 100) }
func LengthFromKilometers(km float64) Length  { return NewLength(1000 * km) }

func (Length) BaseSymbol() string               { return "m" }
func (Length) withValue(v float64) Length       { return NewLength(v) }
func (l Length) String() string                 { return format(l) }
func (l Length) PrefixedString(p Prefix) string { return formatPrefixed(l, p) }

func (l Length) Meters() float64      { return l.Value() }
func (l Length) Millimeters() float64 { return 1000 * l.Value() }
func (l Length) Centimeters() float64 { return 100 * l.Value() }
func (l Length) Kilometers() float64  { return l.Value() / 1000 }

//-------------------------------------------------------------------
// Area
//-------------------------------------------------------------------

const areaPower = 2

// Area is stored in square meters. Prefixed sub-units scale by the factor squared.
type Area struct{ magnitude }

func NewArea(m2 float64) Area { return Area{magnitude(m2)} }
func AreaFromSquareMeters(m2 float64) Area {
	return NewArea(m2)
}
func AreaFromSquareMillimeters(mm2 float64) Area {
	return NewArea(convertToBase(Milli, areaPower, mm2))
}
func AreaFromSquareCentimeters(cm2 float64) Area {
	return NewArea(convertToBase(Centi, areaPower, cm2))
}
func AreaFromSquareKilometers(km2 float64) Area {
	return NewArea(convertToBase(Kilo, areaPower, km2))
}

func (Area) BaseSymbol() string               { return "m^2" }
func (Area) withValue(v float64) Area         { return NewArea(v) }
func (a Area) String() string                 { return format(a) }
func (a Area) PrefixedString(p Prefix) string { return formatPrefixed(a, p) }

func (a Area) SquareMeters() float64      { return a.Value() }
func (a Area) SquareMillimeters() float64 { return convertToPrefix(Milli, areaPower, a.Value()) }
func (a Area) SquareCentimeters() float64 { return convertToPrefix(Centi, areaPower, a.Value()) }
func (a Area) SquareKilometers() float64  { return convertToPrefix(Kilo, areaPower, a.Value()) }

//-------------------------------------------------------------------
// Volume
//-------------------------------------------------------------------

const volumePower = 3

// Volume is stored in cubic meters. Prefixed sub-units scale by the factor cubed.
type Volume struct{ magnitude }

func NewVolume(m3 float64) Volume { return Volume{magnitude(m3)} }
func VolumeFromCubicMeters(m3 float64) Volume {
	return NewVolume(m3)
}
func VolumeFromCubicCentimeters(cm3 float64) Volume {
	return NewVolume(convertToBase(Centi, volumePower, cm3))
}
func VolumeFromCubicMillimeters(mm3 float64) Volume {
	return NewVolume(convertToBase(Milli, volumePower, mm3))
}

// VolumeFromDimensions returns the volume of a box l x w x d.
func VolumeFromDimensions(l, w, d Length) Volume {
	return l.MulLength(w).MulLength(d)
}

// VolumeFromArea returns the volume of a prism with base a and height l.
func VolumeFromArea(a Area, l Length) Volume {
	return a.MulLength(l)
}

func (Volume) BaseSymbol() string               { return "m^3" }
func (Volume) withValue(v float64) Volume       { return NewVolume(v) }
func (v Volume) String() string                 { return format(v) }
func (v Volume) PrefixedString(p Prefix) string { return formatPrefixed(v, p) }

func (v Volume) CubicMeters() float64      { return convertToPrefix(Unity, volumePower, v.Value()) }
func (v Volume) CubicCentimeters() float64 { return convertToPrefix(Centi, volumePower, v.Value()) }
func (v Volume) CubicMillimeters() float64 { return convertToPrefix(Milli, volumePower, v.Value()) }
