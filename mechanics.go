// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.17
//

package units

import (
	"math"
	"time"
)

//-------------------------------------------------------------------
// Mass
//-------------------------------------------------------------------

// Mass is stored in kilograms.
type Mass struct{ magnitude }

func NewMass(kg float64) Mass           { return Mass{magnitude(kg)} }
func MassFromGrams(g float64) Mass      { return NewMass(g / Kilo.Factor()) }
func MassFromKilograms(kg float64) Mass { return NewMass(kg) }
func MassFromTonnes(t float64) Mass     { return NewMass(Kilo.Factor() * t) }

func (Mass) BaseSymbol() string               { return "kg" }
func (Mass) withValue(v float64) Mass         { return NewMass(v) }
func (m Mass) String() string                 { return format(m) }
func (m Mass) PrefixedString(p Prefix) string { return formatPrefixed(m, p) }

// The base unit already carries the kilo prefix, so FromPrefix[Mass](v, p)
// treats v as p-grams.
func (Mass) basePrefix() Prefix { return Kilo }

func (m Mass) Grams() float64     { return Kilo.Factor() * m.Value() }
func (m Mass) Kilograms() float64 { return m.Value() }
func (m Mass) Tonnes() float64    { return m.Value() / Kilo.Factor() }

//-------------------------------------------------------------------
// Velocity
//-------------------------------------------------------------------

// Velocity is stored in meters per second.
type Velocity struct{ magnitude }

func NewVelocity(mps float64) Velocity                 { return Velocity{magnitude(mps)} }
func VelocityFromMetersPerSecond(mps float64) Velocity { return NewVelocity(mps) }
func VelocityFromMillimetersPerSecond(mmps float64) Velocity {
	return NewVelocity(mmps / 1000)
}
func VelocityFromKilometersPerHour(kph float64) Velocity {
	return NewVelocity(1000 * kph / 60 / 60)
}

func (Velocity) BaseSymbol() string               { return "m/s" }
func (Velocity) withValue(v float64) Velocity     { return NewVelocity(v) }
func (v Velocity) String() string                 { return format(v) }
func (v Velocity) PrefixedString(p Prefix) string { return formatPrefixed(v, p) }

func (v Velocity) MetersPerSecond() float64      { return v.Value() }
func (v Velocity) MillimetersPerSecond() float64 { return 1000 * v.Value() }
func (v Velocity) KilometersPerHour() float64    { return 60 * 60 * v.Value() / 1000 }

//-------------------------------------------------------------------
// Acceleration
//-------------------------------------------------------------------

// Acceleration is stored in meters per second squared.
type Acceleration struct{ magnitude }

func NewAcceleration(mps2 float64) Acceleration { return Acceleration{magnitude(mps2)} }
func AccelerationFromMetersPerSecondSquared(mps2 float64) Acceleration {
	return NewAcceleration(mps2)
}

func (Acceleration) BaseSymbol() string               { return "m/s^2" }
func (Acceleration) withValue(v float64) Acceleration { return NewAcceleration(v) }
func (a Acceleration) String() string                 { return format(a) }
func (a Acceleration) PrefixedString(p Prefix) string { return formatPrefixed(a, p) }

func (a Acceleration) MetersPerSecondSquared() float64 { return a.Value() }

// StandardGravities returns the acceleration as a multiple of StandardGravity.
func (a Acceleration) StandardGravities() float64 { return a.Value() / StandardGravity }

//-------------------------------------------------------------------
// Force
//-------------------------------------------------------------------

// Force is stored in newtons.
type Force struct{ magnitude }

func NewForce(n float64) Force              { return Force{magnitude(n)} }
func ForceFromNewtons(n float64) Force      { return NewForce(n) }
func ForceFromKilonewtons(kn float64) Force { return NewForce(1000 * kn) }

// ForceFromMassAcceleration returns F = ma.
func ForceFromMassAcceleration(m Mass, a Acceleration) Force {
	return m.MulAcceleration(a)
}

func (Force) BaseSymbol() string               { return "N" }
func (Force) withValue(v float64) Force        { return NewForce(v) }
func (f Force) String() string                 { return format(f) }
func (f Force) PrefixedString(p Prefix) string { return formatPrefixed(f, p) }

func (f Force) Newtons() float64     { return f.Value() }
func (f Force) Kilonewtons() float64 { return f.Value() / 1000 }

//-------------------------------------------------------------------
// Torque
//-------------------------------------------------------------------

// Torque is stored in newton meters.
type Torque struct{ magnitude }

func NewTorque(nm float64) Torque                   { return Torque{magnitude(nm)} }
func TorqueFromNewtonMeters(nm float64) Torque      { return NewTorque(nm) }
func TorqueFromKilonewtonMeters(knm float64) Torque { return NewTorque(Kilo.Factor() * knm) }

func (Torque) BaseSymbol() string               { return "Nm" }
func (Torque) withValue(v float64) Torque       { return NewTorque(v) }
func (t Torque) String() string                 { return format(t) }
func (t Torque) PrefixedString(p Prefix) string { return formatPrefixed(t, p) }

func (t Torque) NewtonMeters() float64     { return t.Value() }
func (t Torque) KilonewtonMeters() float64 { return t.Value() / Kilo.Factor() }

//-------------------------------------------------------------------
// AngularVelocity
//-------------------------------------------------------------------

// AngularVelocity is stored in radians per second.
type AngularVelocity struct{ magnitude }

func NewAngularVelocity(radps float64) AngularVelocity { return AngularVelocity{magnitude(radps)} }
func AngularVelocityFromRadiansPerSecond(radps float64) AngularVelocity {
	return NewAngularVelocity(radps)
}
func AngularVelocityFromRPM(rpm float64) AngularVelocity {
	return NewAngularVelocity(2 * math.Pi * rpm / 60)
}

func (AngularVelocity) BaseSymbol() string                  { return "rad/s" }
func (AngularVelocity) withValue(v float64) AngularVelocity { return NewAngularVelocity(v) }
func (w AngularVelocity) String() string                    { return format(w) }
func (w AngularVelocity) PrefixedString(p Prefix) string    { return formatPrefixed(w, p) }

func (w AngularVelocity) RadiansPerSecond() float64 { return w.Value() }
func (w AngularVelocity) RPM() float64              { return 60 * w.Value() / (2 * math.Pi) }

//-------------------------------------------------------------------
// Time
//-------------------------------------------------------------------

// Time is a span stored in seconds.
type Time struct{ magnitude }

func NewTime(sec float64) Time              { return Time{magnitude(sec)} }
func TimeFromSeconds(sec float64) Time      { return NewTime(sec) }
func TimeFromMilliseconds(ms float64) Time  { return NewTime(ms / 1000) }
func TimeFromMinutes(min float64) Time      { return NewTime(60 * min) }
func TimeFromHours(hr float64) Time         { return NewTime(60 * 60 * hr) }
func TimeFromDuration(d time.Duration) Time { return NewTime(d.Seconds()) }

func (Time) BaseSymbol() string               { return "s" }
func (Time) withValue(v float64) Time         { return NewTime(v) }
func (t Time) String() string                 { return format(t) }
func (t Time) PrefixedString(p Prefix) string { return formatPrefixed(t, p) }

func (t Time) Seconds() float64      { return t.Value() }
func (t Time) Milliseconds() float64 { return 1000 * t.Value() }
func (t Time) Minutes() float64      { return t.Value() / 60 }
func (t Time) Hours() float64        { return t.Value() / 60 / 60 }

// Duration rounds to the nearest nanosecond. Values outside the range of
// time.Duration saturate.
func (t Time) Duration() time.Duration {
	ns := math.Round(t.Value() * float64(time.Second))
	switch {
	case ns >= math.MaxInt64:
		return math.MaxInt64
	case ns <= math.MinInt64:
		return math.MinInt64
	}
	return time.Duration(ns)
}

//-------------------------------------------------------------------
// Power
//-------------------------------------------------------------------

// Power is stored in watts.
type Power struct{ magnitude }

func NewPower(w float64) Power             { return Power{magnitude(w)} }
func PowerFromMilliwatts(mw float64) Power { return NewPower(Milli.Factor() * mw) }
func PowerFromWatts(w float64) Power       { return NewPower(w) }
func PowerFromKilowatts(kw float64) Power  { return NewPower(Kilo.Factor() * kw) }
func PowerFromMegawatts(mw float64) Power  { return NewPower(Mega.Factor() * mw) }

func (Power) BaseSymbol() string               { return "W" }
func (Power) withValue(v float64) Power        { return NewPower(v) }
func (p Power) String() string                 { return format(p) }
func (p Power) PrefixedString(x Prefix) string { return formatPrefixed(p, x) }

func (p Power) Milliwatts() float64 { return p.Value() / Milli.Factor() }
func (p Power) Watts() float64      { return p.Value() }
func (p Power) Kilowatts() float64  { return p.Value() / Kilo.Factor() }
func (p Power) Megawatts() float64  { return p.Value() / Mega.Factor() }

//-------------------------------------------------------------------
// Work
//-------------------------------------------------------------------

const secondsPerHour = 60 * 60

// Work (energy) is stored in joules.
type Work struct{ magnitude }

func NewWork(j float64) Work             { return Work{magnitude(j)} }
func WorkFromJoules(j float64) Work      { return NewWork(j) }
func WorkFromKilojoules(kj float64) Work { return NewWork(Kilo.Factor() * kj) }
func WorkFromWattHours(wh float64) Work  { return NewWork(secondsPerHour * wh) }

func (Work) BaseSymbol() string               { return "J" }
func (Work) withValue(v float64) Work         { return NewWork(v) }
func (w Work) String() string                 { return format(w) }
func (w Work) PrefixedString(p Prefix) string { return formatPrefixed(w, p) }

func (w Work) Joules() float64     { return w.Value() }
func (w Work) Kilojoules() float64 { return w.Value() / Kilo.Factor() }
func (w Work) WattHours() float64  { return w.Value() / secondsPerHour }
