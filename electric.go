// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.17
//

package units

//-------------------------------------------------------------------
// Voltage
//-------------------------------------------------------------------

// Voltage is stored in volts.
type Voltage struct{ magnitude }

func NewVoltage(v float64) Voltage             { return Voltage{magnitude(v)} }
func VoltageFromVolts(v float64) Voltage       { return NewVoltage(v) }
func VoltageFromEMF(emf float64) Voltage       { return NewVoltage(emf) }
func VoltageFromMicrovolts(uv float64) Voltage { return NewVoltage(Micro.Factor() * uv) }
func VoltageFromMillivolts(mv float64) Voltage { return NewVoltage(Milli.Factor() * mv) }
func VoltageFromKilovolts(kv float64) Voltage  { return NewVoltage(Kilo.Factor() * kv) }

func (Voltage) BaseSymbol() string               { return "V" }
func (Voltage) withValue(v float64) Voltage      { return NewVoltage(v) }
func (v Voltage) String() string                 { return format(v) }
func (v Voltage) PrefixedString(p Prefix) string { return formatPrefixed(v, p) }

func (v Voltage) Volts() float64      { return v.Value() }
func (v Voltage) EMF() float64        { return v.Value() }
func (v Voltage) Microvolts() float64 { return v.Value() / Micro.Factor() }
func (v Voltage) Millivolts() float64 { return v.Value() / Milli.Factor() }
func (v Voltage) Kilovolts() float64  { return v.Value() / Kilo.Factor() }

//-------------------------------------------------------------------
// Current
//-------------------------------------------------------------------

// Current is stored in amperes.
type Current struct{ magnitude }

func NewCurrent(a float64) Current               { return Current{magnitude(a)} }
func CurrentFromNanoamperes(na float64) Current  { return NewCurrent(Nano.Factor() * na) }
func CurrentFromMicroamperes(ua float64) Current { return NewCurrent(Micro.Factor() * ua) }
func CurrentFromMilliamperes(ma float64) Current { return NewCurrent(Milli.Factor() * ma) }
func CurrentFromAmperes(a float64) Current       { return NewCurrent(a) }
func CurrentFromKiloamperes(ka float64) Current  { return NewCurrent(Kilo.Factor() * ka) }

func (Current) BaseSymbol() string               { return "A" }
func (Current) withValue(v float64) Current      { return NewCurrent(v) }
func (i Current) String() string                 { return format(i) }
func (i Current) PrefixedString(p Prefix) string { return formatPrefixed(i, p) }

func (i Current) Nanoamperes() float64  { return i.Value() / Nano.Factor() }
func (i Current) Microamperes() float64 { return i.Value() / Micro.Factor() }
func (i Current) Milliamperes() float64 { return i.Value() / Milli.Factor() }
func (i Current) Amperes() float64      { return i.Value() }
func (i Current) Kiloamperes() float64  { return i.Value() / Kilo.Factor() }

//-------------------------------------------------------------------
// Resistance
//-------------------------------------------------------------------

// Resistance is stored in ohms.
type Resistance struct{ magnitude }

func NewResistance(ohm float64) Resistance           { return Resistance{magnitude(ohm)} }
func ResistanceFromOhms(ohm float64) Resistance      { return NewResistance(ohm) }
func ResistanceFromKiloohms(kohm float64) Resistance { return NewResistance(Kilo.Factor() * kohm) }
func ResistanceFromMegaohms(mohm float64) Resistance { return NewResistance(Mega.Factor() * mohm) }

func (Resistance) BaseSymbol() string               { return "Ω" }
func (Resistance) withValue(v float64) Resistance   { return NewResistance(v) }
func (r Resistance) String() string                 { return format(r) }
func (r Resistance) PrefixedString(p Prefix) string { return formatPrefixed(r, p) }

func (r Resistance) Ohms() float64     { return r.Value() }
func (r Resistance) Kiloohms() float64 { return r.Value() / Kilo.Factor() }
func (r Resistance) Megaohms() float64 { return r.Value() / Mega.Factor() }

//-------------------------------------------------------------------
// Charge
//-------------------------------------------------------------------

// Charge is stored in coulombs.
type Charge struct{ magnitude }

func NewCharge(c float64) Charge          { return Charge{magnitude(c)} }
func ChargeFromCoulombs(c float64) Charge { return NewCharge(c) }

// ChargeFromAmpereHours converts battery capacity ratings.
func ChargeFromAmpereHours(ah float64) Charge { return NewCharge(secondsPerHour * ah) }

func (Charge) BaseSymbol() string               { return "C" }
func (Charge) withValue(v float64) Charge       { return NewCharge(v) }
func (q Charge) String() string                 { return format(q) }
func (q Charge) PrefixedString(p Prefix) string { return formatPrefixed(q, p) }

func (q Charge) Coulombs() float64    { return q.Value() }
func (q Charge) AmpereHours() float64 { return q.Value() / secondsPerHour }
