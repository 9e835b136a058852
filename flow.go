// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.17
//

package units

//-------------------------------------------------------------------
// Density
//-------------------------------------------------------------------

// Density is stored in kilograms per cubic meter.
type Density struct{ magnitude }

func NewDensity(kgpm3 float64) Density { return Density{magnitude(kgpm3)} }
func DensityFromKilogramsPerCubicMeter(kgpm3 float64) Density {
	return NewDensity(kgpm3)
}
func DensityFromTonnesPerCubicMeter(tpm3 float64) Density {
	return NewDensity(Kilo.Factor() * tpm3)
}

// DensityFromMassVolume returns m / v.
func DensityFromMassVolume(m Mass, v Volume) Density {
	return m.DivVolume(v)
}

func (Density) BaseSymbol() string               { return "kg/m^3" }
func (Density) withValue(v float64) Density      { return NewDensity(v) }
func (d Density) String() string                 { return format(d) }
func (d Density) PrefixedString(p Prefix) string { return formatPrefixed(d, p) }

func (d Density) KilogramsPerCubicMeter() float64 { return d.Value() }
func (d Density) TonnesPerCubicMeter() float64    { return d.Value() / Kilo.Factor() }

//-------------------------------------------------------------------
// MassPerLength
//-------------------------------------------------------------------

// MassPerLength (linear density) is stored in kilograms per meter.
type MassPerLength struct{ magnitude }

func NewMassPerLength(kgpm float64) MassPerLength { return MassPerLength{magnitude(kgpm)} }
func MassPerLengthFromKilogramsPerMeter(kgpm float64) MassPerLength {
	return NewMassPerLength(kgpm)
}

func (MassPerLength) BaseSymbol() string                { return "kg/m" }
func (MassPerLength) withValue(v float64) MassPerLength { return NewMassPerLength(v) }
func (m MassPerLength) String() string                  { return format(m) }
func (m MassPerLength) PrefixedString(p Prefix) string  { return formatPrefixed(m, p) }

func (m MassPerLength) KilogramsPerMeter() float64 { return m.Value() }

//-------------------------------------------------------------------
// MassFlowRate
//-------------------------------------------------------------------

// MassFlowRate is stored in kilograms per second.
type MassFlowRate struct{ magnitude }

func NewMassFlowRate(kgps float64) MassFlowRate { return MassFlowRate{magnitude(kgps)} }
func MassFlowRateFromKilogramsPerSecond(kgps float64) MassFlowRate {
	return NewMassFlowRate(kgps)
}
func MassFlowRateFromTonnesPerHour(tph float64) MassFlowRate {
	return NewMassFlowRate(1000 * tph / 60 / 60)
}

func (MassFlowRate) BaseSymbol() string               { return "kg/s" }
func (MassFlowRate) withValue(v float64) MassFlowRate { return NewMassFlowRate(v) }
func (m MassFlowRate) String() string                 { return format(m) }
func (m MassFlowRate) PrefixedString(p Prefix) string { return formatPrefixed(m, p) }

func (m MassFlowRate) KilogramsPerSecond() float64 { return m.Value() }
func (m MassFlowRate) TonnesPerHour() float64      { return 60 * 60 * m.Value() / 1000 }

//-------------------------------------------------------------------
// VolumeFlowRate
//-------------------------------------------------------------------

// VolumeFlowRate is stored in cubic meters per second.
type VolumeFlowRate struct{ magnitude }

func NewVolumeFlowRate(m3ps float64) VolumeFlowRate { return VolumeFlowRate{magnitude(m3ps)} }
func VolumeFlowRateFromCubicMetersPerSecond(m3ps float64) VolumeFlowRate {
	return NewVolumeFlowRate(m3ps)
}
func VolumeFlowRateFromCubicMillimetersPerSecond(mm3ps float64) VolumeFlowRate {
	return NewVolumeFlowRate(convertToBase(Milli, volumePower, mm3ps))
}

func (VolumeFlowRate) BaseSymbol() string                 { return "m^3/s" }
func (VolumeFlowRate) withValue(v float64) VolumeFlowRate { return NewVolumeFlowRate(v) }
func (q VolumeFlowRate) String() string                   { return format(q) }
func (q VolumeFlowRate) PrefixedString(p Prefix) string   { return formatPrefixed(q, p) }

func (q VolumeFlowRate) CubicMetersPerSecond() float64 { return q.Value() }
func (q VolumeFlowRate) CubicMillimetersPerSecond() float64 {
	return convertToPrefix(Milli, volumePower, q.Value())
}
