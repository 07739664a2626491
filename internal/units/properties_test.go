package units_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dimcalc/internal/units"
)

var _ = Describe("derivation properties", func() {
	Describe("round trips", func() {
		DescribeTable("distance survives speed and back",
			func(meters, seconds float64) {
				elapsed := units.NewTime(seconds)
				v := units.SpeedFrom(units.NewLength(meters), elapsed)
				Expect(units.DistanceFrom(v, elapsed).Meters()).To(BeNumerically("~", meters, 1e-9*math.Max(1, meters)))
				Expect(units.TravelTime(units.NewLength(meters), v).Seconds()).To(BeNumerically("~", seconds, 1e-9*math.Max(1, seconds)))
			},
			Entry("walk", 1200.0, 900.0),
			Entry("sprint", 100.0, 9.58),
			Entry("orbit", 4.0075e7, 5400.0),
		)

		DescribeTable("force survives the gram scaling",
			func(newtons, accel float64) {
				a := units.NewAcceleration(accel)
				m := units.MassFromForce(units.NewForce(newtons), a)
				Expect(units.ForceFrom(m, a).Newtons()).To(BeNumerically("~", newtons, 1e-9*math.Max(1, newtons)))
				Expect(units.AccelerationFromForce(units.NewForce(newtons), m).MetersPerSecondSq()).To(BeNumerically("~", accel, 1e-9*math.Max(1, accel)))
			},
			Entry("apple", 1.0, 9.80665),
			Entry("car braking", 12000.0, 7.5),
			Entry("rocket", 7.6e6, 30.0),
		)

		DescribeTable("ohm's law closes",
			func(volts, ohms float64) {
				r := units.NewResistance(ohms)
				i := units.CurrentFrom(units.NewVoltage(volts), r)
				Expect(units.VoltageFrom(i, r).Volts()).To(BeNumerically("~", volts, 1e-9*math.Max(1, math.Abs(volts))))
				Expect(units.ResistanceFrom(units.NewVoltage(volts), i).Ohms()).To(BeNumerically("~", ohms, 1e-9*math.Max(1, ohms)))
			},
			Entry("battery", 9.0, 330.0),
			Entry("mains", 230.0, 52.9),
			Entry("negative rail", -15.0, 1000.0),
		)

		It("keeps power consistent across both electrical forms", func() {
			v := units.NewVoltage(48)
			i := units.NewCurrent(6.25)
			p := units.ElectricPower(v, i)
			Expect(p.Watts()).To(Equal(300.0))
			Expect(units.CurrentFromPower(p, v).Amperes()).To(Equal(6.25))
			Expect(units.VoltageFromPower(p, i).Volts()).To(Equal(48.0))
		})
	})

	Describe("reference values", func() {
		It("computes kinetic energy in joules from grams", func() {
			Expect(units.KineticEnergy(units.NewMass(2000), units.NewSpeed(3))).To(BeNumerically("~", 9.0, 1e-12))
		})

		It("weighs one kilogram", func() {
			Expect(units.ForceFrom(units.NewMass(1000), units.NewAcceleration(9.8)).Newtons()).To(BeNumerically("~", 9.8, 1e-12))
		})

		It("computes density in kg/m³ from grams and liters", func() {
			Expect(units.DensityFrom(units.NewMass(5000), units.NewVolume(2)).KilogramsPerCubicMeter()).To(BeNumerically("~", 2500.0, 1e-9))
		})

		It("stores values in the unit they were constructed with", func() {
			Expect(units.NewMass(1500).Grams()).To(Equal(1500.0))
			Expect(units.NewVolume(0.75).Liters()).To(Equal(0.75))
			Expect(units.NewLength(3).Meters()).To(Equal(3.0))
		})

		It("compares measurements by canonical value", func() {
			Expect(units.NewSpeed(4)).To(Equal(units.SpeedFrom(units.NewLength(8), units.NewTime(2))))
			Expect(units.NewForce(1) == units.NewForce(1)).To(BeTrue())
		})
	})

	Describe("zero denominators", func() {
		DescribeTable("yield IEEE-754 special values instead of panicking",
			func(eval func() float64, check func(float64) bool) {
				var got float64
				Expect(func() { got = eval() }).NotTo(Panic())
				Expect(check(got)).To(BeTrue(), "unexpected value %v", got)
			},
			Entry("speed over zero time",
				func() float64 { return units.SpeedFrom(units.NewLength(1), units.NewTime(0)).MetersPerSecond() },
				func(v float64) bool { return math.IsInf(v, 1) }),
			Entry("force over zero area",
				func() float64 { return units.PressureFrom(units.NewForce(-3), units.NewArea(0)).Pascals() },
				func(v float64) bool { return math.IsInf(v, -1) }),
			Entry("zero mass in zero volume",
				func() float64 {
					return units.DensityFrom(units.NewMass(0), units.NewVolume(0)).KilogramsPerCubicMeter()
				},
				func(v float64) bool { return math.IsNaN(v) }),
			Entry("acceleration of a massless body",
				func() float64 {
					return units.AccelerationFromForce(units.NewForce(1), units.NewMass(0)).MetersPerSecondSq()
				},
				func(v float64) bool { return math.IsInf(v, 1) }),
			Entry("current through no resistance",
				func() float64 { return units.CurrentFrom(units.NewVoltage(0), units.NewResistance(0)).Amperes() },
				func(v float64) bool { return math.IsNaN(v) }),
		)
	})
})
