// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.17
//

package units

// Cross-type products and quotients. Each one is defined for exactly one pair of
// quantity types; a pair without a method here has no physical meaning.
// Both operands are taken in base units and the result is built from a base-unit magnitude.

// ------------------------------------
// Geometry
// ------------------------------------

func (l Length) MulLength(o Length) Area { return NewArea(l.Value() * o.Value()) }

func (a Area) MulLength(l Length) Volume { return NewVolume(a.Value() * l.Value()) }
func (l Length) MulArea(a Area) Volume   { return NewVolume(l.Value() * a.Value()) }

func (a Area) DivLength(l Length) Length { return NewLength(a.Value() / l.Value()) }
func (v Volume) DivArea(a Area) Length   { return NewLength(v.Value() / a.Value()) }
func (v Volume) DivLength(l Length) Area { return NewArea(v.Value() / l.Value()) }

// ------------------------------------
// Flow
// ------------------------------------

func (a Area) MulVelocity(v Velocity) VolumeFlowRate {
	return NewVolumeFlowRate(a.Value() * v.Value())
}
func (v Velocity) MulArea(a Area) VolumeFlowRate {
	return NewVolumeFlowRate(v.Value() * a.Value())
}

func (d Density) MulVolumeFlowRate(q VolumeFlowRate) MassFlowRate {
	return NewMassFlowRate(d.Value() * q.Value())
}
func (q VolumeFlowRate) MulDensity(d Density) MassFlowRate {
	return NewMassFlowRate(q.Value() * d.Value())
}

func (m MassFlowRate) DivVelocity(v Velocity) MassPerLength {
	return NewMassPerLength(m.Value() / v.Value())
}

// ------------------------------------
// Density
// ------------------------------------

func (m Mass) DivVolume(v Volume) Density  { return NewDensity(m.Value() / v.Value()) }
func (m Mass) DivDensity(d Density) Volume { return NewVolume(m.Value() / d.Value()) }

func (d Density) MulVolume(v Volume) Mass  { return NewMass(d.Value() * v.Value()) }
func (v Volume) MulDensity(d Density) Mass { return NewMass(v.Value() * d.Value()) }

func (m MassPerLength) MulLength(l Length) Mass        { return NewMass(m.Value() * l.Value()) }
func (l Length) MulMassPerLength(m MassPerLength) Mass { return NewMass(l.Value() * m.Value()) }
func (m Mass) DivLength(l Length) MassPerLength        { return NewMassPerLength(m.Value() / l.Value()) }

// ------------------------------------
// F = ma
// ------------------------------------

func (m Mass) MulAcceleration(a Acceleration) Force { return NewForce(m.Value() * a.Value()) }
func (a Acceleration) MulMass(m Mass) Force         { return NewForce(a.Value() * m.Value()) }

func (f Force) DivMass(m Mass) Acceleration         { return NewAcceleration(f.Value() / m.Value()) }
func (f Force) DivAcceleration(a Acceleration) Mass { return NewMass(f.Value() / a.Value()) }

// ------------------------------------
// P = Fv
// ------------------------------------

func (f Force) MulVelocity(v Velocity) Power { return NewPower(f.Value() * v.Value()) }
func (v Velocity) MulForce(f Force) Power    { return NewPower(v.Value() * f.Value()) }

// ------------------------------------
// Torque, P = Tω
// ------------------------------------

func (l Length) MulForce(f Force) Torque  { return NewTorque(l.Value() * f.Value()) }
func (f Force) MulLength(l Length) Torque { return NewTorque(f.Value() * l.Value()) }
func (t Torque) DivLength(l Length) Force { return NewForce(t.Value() / l.Value()) }

func (t Torque) MulAngularVelocity(w AngularVelocity) Power {
	return NewPower(t.Value() * w.Value())
}
func (w AngularVelocity) MulTorque(t Torque) Power {
	return NewPower(w.Value() * t.Value())
}
func (p Power) DivAngularVelocity(w AngularVelocity) Torque {
	return NewTorque(p.Value() / w.Value())
}

// ------------------------------------
// P = VI
// ------------------------------------

func (v Voltage) MulCurrent(i Current) Power { return NewPower(v.Value() * i.Value()) }
func (i Current) MulVoltage(v Voltage) Power { return NewPower(i.Value() * v.Value()) }
func (p Power) DivVoltage(v Voltage) Current { return NewCurrent(p.Value() / v.Value()) }
func (p Power) DivCurrent(i Current) Voltage { return NewVoltage(p.Value() / i.Value()) }

// ------------------------------------
// V = IR
// ------------------------------------

func (i Current) MulResistance(r Resistance) Voltage { return NewVoltage(i.Value() * r.Value()) }
func (r Resistance) MulCurrent(i Current) Voltage    { return NewVoltage(r.Value() * i.Value()) }
func (v Voltage) DivCurrent(i Current) Resistance    { return NewResistance(v.Value() / i.Value()) }
func (v Voltage) DivResistance(r Resistance) Current { return NewCurrent(v.Value() / r.Value()) }

// PowerIn returns the power dissipated by i flowing through r (P = I^2 R).
func (i Current) PowerIn(r Resistance) Power {
	return NewPower(sq(i.Value()) * r.Value())
}

// PowerAcross returns the power dissipated by v applied across r (P = V^2 / R).
func (v Voltage) PowerAcross(r Resistance) Power {
	return NewPower(sq(v.Value()) / r.Value())
}

// ------------------------------------
// W = VQ
// ------------------------------------

func (v Voltage) MulCharge(q Charge) Work  { return NewWork(v.Value() * q.Value()) }
func (q Charge) MulVoltage(v Voltage) Work { return NewWork(q.Value() * v.Value()) }
func (w Work) DivVoltage(v Voltage) Charge { return NewCharge(w.Value() / v.Value()) }
func (w Work) DivCharge(q Charge) Voltage  { return NewVoltage(w.Value() / q.Value()) }
