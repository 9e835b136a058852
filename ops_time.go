// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.17
//

package units

// Rates and their integrals over a span of Time.

func (l Length) DivTime(t Time) Velocity     { return NewVelocity(l.Value() / t.Value()) }
func (v Velocity) MulTime(t Time) Length     { return NewLength(v.Value() * t.Value()) }
func (t Time) MulVelocity(v Velocity) Length { return NewLength(t.Value() * v.Value()) }

func (v Velocity) DivTime(t Time) Acceleration         { return NewAcceleration(v.Value() / t.Value()) }
func (a Acceleration) MulTime(t Time) Velocity         { return NewVelocity(a.Value() * t.Value()) }
func (t Time) MulAcceleration(a Acceleration) Velocity { return NewVelocity(t.Value() * a.Value()) }

func (p Power) MulTime(t Time) Work  { return NewWork(p.Value() * t.Value()) }
func (t Time) MulPower(p Power) Work { return NewWork(t.Value() * p.Value()) }
func (w Work) DivTime(t Time) Power  { return NewPower(w.Value() / t.Value()) }
func (w Work) DivPower(p Power) Time { return NewTime(w.Value() / p.Value()) }

func (i Current) MulTime(t Time) Charge    { return NewCharge(i.Value() * t.Value()) }
func (t Time) MulCurrent(i Current) Charge { return NewCharge(t.Value() * i.Value()) }
func (q Charge) DivTime(t Time) Current    { return NewCurrent(q.Value() / t.Value()) }
func (q Charge) DivCurrent(i Current) Time { return NewTime(q.Value() / i.Value()) }

func (v Volume) DivTime(t Time) VolumeFlowRate {
	return NewVolumeFlowRate(v.Value() / t.Value())
}
func (q VolumeFlowRate) MulTime(t Time) Volume {
	return NewVolume(q.Value() * t.Value())
}

func (m Mass) DivTime(t Time) MassFlowRate {
	return NewMassFlowRate(m.Value() / t.Value())
}
func (m MassFlowRate) MulTime(t Time) Mass {
	return NewMass(m.Value() * t.Value())
}

func (a Angle) DivTime(t Time) AngularVelocity {
	return NewAngularVelocity(a.Value() / t.Value())
}
func (w AngularVelocity) MulTime(t Time) Angle {
	return NewAngle(w.Value() * t.Value())
}
