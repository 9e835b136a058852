// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.17
//

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewtonsSecondLaw(t *testing.T) {
	m := MassFromKilograms(2)
	a := AccelerationFromMetersPerSecondSquared(9.80665)

	f := m.MulAcceleration(a)
	assert.InDelta(t, 19.6133, f.Newtons(), 0.01)
	assert.Equal(t, f.Newtons(), ForceFromMassAcceleration(m, a).Newtons())
	assert.Equal(t, f, m.MulAcceleration(Gravity()))

	assert.InDelta(t, 9.80665, f.DivMass(m).MetersPerSecondSquared(), 1e-12)
	assert.InDelta(t, 2.0, f.DivAcceleration(a).Kilograms(), 1e-12)
}

func TestElectricalIdentities(t *testing.T) {
	v := VoltageFromVolts(3)
	r := ResistanceFromOhms(100)

	p := v.MulCurrent(v.DivResistance(r))
	assert.InDelta(t, 90.0, p.Milliwatts(), 0.1)
	assert.InDelta(t, p.Watts(), v.PowerAcross(r).Watts(), 1e-12)
	assert.InDelta(t, p.Watts(), v.DivResistance(r).PowerIn(r).Watts(), 1e-12)

	i := CurrentFromMilliamperes(30)
	assert.InDelta(t, 3.0, i.MulResistance(r).Volts(), 1e-12)
	assert.InDelta(t, 100.0, v.DivCurrent(i).Ohms(), 1e-9)
	assert.InDelta(t, 30.0, p.DivVoltage(v).Milliamperes(), 1e-9)
	assert.InDelta(t, 3.0, p.DivCurrent(i).Volts(), 1e-9)

	q := ChargeFromCoulombs(5)
	w := v.MulCharge(q)
	assert.InDelta(t, 15.0, w.Joules(), 1e-12)
	assert.InDelta(t, 5.0, w.DivVoltage(v).Coulombs(), 1e-12)
	assert.InDelta(t, 3.0, w.DivCharge(q).Volts(), 1e-12)
}

func TestCommutativeOperators(t *testing.T) {
	l := LengthFromMeters(2.5)
	a := AreaFromSquareMeters(1.75)
	m := MassFromKilograms(3.3)
	acc := AccelerationFromMetersPerSecondSquared(-4.1)
	vel := VelocityFromMetersPerSecond(12.7)
	f := ForceFromNewtons(81.2)
	d := DensityFromKilogramsPerCubicMeter(998.2)
	qv := VolumeFlowRateFromCubicMetersPerSecond(0.031)
	mpl := MassPerLengthFromKilogramsPerMeter(7.85)
	tq := TorqueFromNewtonMeters(44.4)
	w := AngularVelocityFromRPM(1500)
	v := VoltageFromVolts(96)
	i := CurrentFromAmperes(200)
	r := ResistanceFromOhms(0.48)
	q := ChargeFromCoulombs(6.5)
	vol := VolumeFromCubicMeters(0.2)
	tm := TimeFromSeconds(7.5)
	p := PowerFromKilowatts(19.2)

	tests := []struct {
		name   string
		ab, ba float64
	}{
		{"mass x acceleration", m.MulAcceleration(acc).Value(), acc.MulMass(m).Value()},
		{"area x length", a.MulLength(l).Value(), l.MulArea(a).Value()},
		{"area x velocity", a.MulVelocity(vel).Value(), vel.MulArea(a).Value()},
		{"density x volume flow", d.MulVolumeFlowRate(qv).Value(), qv.MulDensity(d).Value()},
		{"density x volume", d.MulVolume(vol).Value(), vol.MulDensity(d).Value()},
		{"mass per length x length", mpl.MulLength(l).Value(), l.MulMassPerLength(mpl).Value()},
		{"force x velocity", f.MulVelocity(vel).Value(), vel.MulForce(f).Value()},
		{"length x force", l.MulForce(f).Value(), f.MulLength(l).Value()},
		{"torque x angular velocity", tq.MulAngularVelocity(w).Value(), w.MulTorque(tq).Value()},
		{"voltage x current", v.MulCurrent(i).Value(), i.MulVoltage(v).Value()},
		{"current x resistance", i.MulResistance(r).Value(), r.MulCurrent(i).Value()},
		{"voltage x charge", v.MulCharge(q).Value(), q.MulVoltage(v).Value()},
		{"velocity x time", vel.MulTime(tm).Value(), tm.MulVelocity(vel).Value()},
		{"acceleration x time", acc.MulTime(tm).Value(), tm.MulAcceleration(acc).Value()},
		{"power x time", p.MulTime(tm).Value(), tm.MulPower(p).Value()},
		{"current x time", i.MulTime(tm).Value(), tm.MulCurrent(i).Value()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ab, tt.ba)
		})
	}
}

func TestGeometryOperators(t *testing.T) {
	l, w, d := LengthFromMeters(2), LengthFromCentimeters(50), LengthFromMillimeters(300)

	box := VolumeFromDimensions(l, w, d)
	assert.InDelta(t, 0.3, box.CubicMeters(), 1e-12)
	assert.Equal(t, l.MulLength(w).MulLength(d), box)

	base := l.MulLength(w)
	assert.InDelta(t, 1.0, base.SquareMeters(), 1e-12)
	assert.Equal(t, base.MulLength(d), VolumeFromArea(base, d))

	assert.InDelta(t, 0.5, base.DivLength(l).Meters(), 1e-12)
	assert.InDelta(t, 0.3, box.DivArea(base).Meters(), 1e-12)
	assert.InDelta(t, 1.0, box.DivLength(d).SquareMeters(), 1e-12)
}

func TestFlowOperators(t *testing.T) {
	pipe := AreaFromSquareCentimeters(20)
	v := VelocityFromMetersPerSecond(1.5)
	water := DensityFromKilogramsPerCubicMeter(1000)

	qv := pipe.MulVelocity(v)
	assert.InDelta(t, 0.003, qv.CubicMetersPerSecond(), 1e-12)

	qm := water.MulVolumeFlowRate(qv)
	assert.InDelta(t, 3.0, qm.KilogramsPerSecond(), 1e-9)

	// mass of water per meter of pipe
	mpl := qm.DivVelocity(v)
	assert.InDelta(t, 2.0, mpl.KilogramsPerMeter(), 1e-9)
	assert.InDelta(t, 20.0, mpl.MulLength(LengthFromMeters(10)).Kilograms(), 1e-9)
	assert.InDelta(t, 2.0, MassFromKilograms(20).DivLength(LengthFromMeters(10)).KilogramsPerMeter(), 1e-12)
}

func TestDensityOperators(t *testing.T) {
	m := MassFromKilograms(7850)
	vol := VolumeFromCubicMeters(1)

	d := m.DivVolume(vol)
	assert.InDelta(t, 7850.0, d.KilogramsPerCubicMeter(), 1e-9)
	assert.Equal(t, d, DensityFromMassVolume(m, vol))
	assert.InDelta(t, 7.85, d.TonnesPerCubicMeter(), 1e-12)

	assert.InDelta(t, 1.0, m.DivDensity(d).CubicMeters(), 1e-12)
	assert.InDelta(t, 7850.0, d.MulVolume(vol).Kilograms(), 1e-9)
}

func TestRotationOperators(t *testing.T) {
	shaft := LengthFromCentimeters(5)
	f := ForceFromNewtons(200)

	tq := shaft.MulForce(f)
	assert.InDelta(t, 10.0, tq.NewtonMeters(), 1e-12)
	assert.InDelta(t, 200.0, tq.DivLength(shaft).Newtons(), 1e-9)

	w := AngularVelocityFromRadiansPerSecond(100)
	p := tq.MulAngularVelocity(w)
	assert.InDelta(t, 1000.0, p.Watts(), 1e-9)
	assert.InDelta(t, 10.0, p.DivAngularVelocity(w).NewtonMeters(), 1e-12)

	assert.InDelta(t, 2540.0, f.MulVelocity(VelocityFromMetersPerSecond(12.7)).Watts(), 1e-9)
}

func TestTimeOperators(t *testing.T) {
	tm := TimeFromSeconds(4)

	v := LengthFromMeters(100).DivTime(tm)
	assert.InDelta(t, 25.0, v.MetersPerSecond(), 1e-12)
	assert.InDelta(t, 100.0, v.MulTime(tm).Meters(), 1e-12)

	a := v.DivTime(tm)
	assert.InDelta(t, 6.25, a.MetersPerSecondSquared(), 1e-12)
	assert.InDelta(t, 25.0, a.MulTime(tm).MetersPerSecond(), 1e-12)

	w := PowerFromWatts(60).MulTime(TimeFromHours(1))
	assert.InDelta(t, 60.0, w.WattHours(), 1e-9)
	assert.InDelta(t, 60.0, w.DivTime(TimeFromHours(1)).Watts(), 1e-9)
	assert.InDelta(t, 1.0, w.DivPower(PowerFromWatts(60)).Hours(), 1e-12)

	q := CurrentFromAmperes(2).MulTime(TimeFromHours(1))
	assert.InDelta(t, 2.0, q.AmpereHours(), 1e-12)
	assert.InDelta(t, 2.0, q.DivTime(TimeFromHours(1)).Amperes(), 1e-12)
	assert.InDelta(t, 1.0, q.DivCurrent(CurrentFromAmperes(2)).Hours(), 1e-12)

	qv := VolumeFromCubicMeters(3).DivTime(TimeFromMinutes(1))
	assert.InDelta(t, 0.05, qv.CubicMetersPerSecond(), 1e-12)
	assert.InDelta(t, 3.0, qv.MulTime(TimeFromMinutes(1)).CubicMeters(), 1e-12)

	qm := MassFromTonnes(3.6).DivTime(TimeFromHours(1))
	assert.InDelta(t, 1.0, qm.KilogramsPerSecond(), 1e-12)
	assert.InDelta(t, 3600.0, qm.MulTime(TimeFromHours(1)).Kilograms(), 1e-9)

	rev := AngleFromDegrees(360).DivTime(TimeFromSeconds(1))
	assert.InDelta(t, 60.0, rev.RPM(), 1e-9)
	assert.InDelta(t, 720.0, rev.MulTime(TimeFromSeconds(2)).Degrees(), 1e-9)
}

// A 96V pack drawing 200A drives a motor at 1500rpm through a 5cm shaft and pushes a 100g load.
func TestMotorWorkedExample(t *testing.T) {
	p := VoltageFromVolts(96).MulCurrent(CurrentFromAmperes(200))
	assert.InDelta(t, 19.2, p.Kilowatts(), 1e-9)

	tq := p.DivAngularVelocity(AngularVelocityFromRPM(1500))
	assert.InDelta(t, 122.23, tq.NewtonMeters(), 0.01)

	f := tq.DivLength(LengthFromCentimeters(5))
	assert.InDelta(t, 2444.6, f.Newtons(), 0.1)

	a := f.DivMass(MassFromGrams(100))
	assert.InDelta(t, 24446.0, a.MetersPerSecondSquared(), 1)
}
