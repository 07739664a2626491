package units

const (
	GramsPerKilogram    = 1000.0
	LitersPerCubicMeter = 1000.0
)

// StandardGravity is g₀ as defined by the CGPM.
var StandardGravity = NewAcceleration(9.80665)

type Length struct{ meters float64 }

func NewLength(meters float64) Length { return Length{meters: meters} }

func (l Length) Meters() float64 { return l.meters }

type Time struct{ seconds float64 }

func NewTime(seconds float64) Time { return Time{seconds: seconds} }

func (t Time) Seconds() float64 { return t.seconds }

// Mass is stored in grams, not kilograms.
type Mass struct{ grams float64 }

func NewMass(grams float64) Mass { return Mass{grams: grams} }

func (m Mass) Grams() float64 { return m.grams }

func (m Mass) kilograms() float64 { return m.grams / GramsPerKilogram }

type Speed struct{ metersPerSecond float64 }

func NewSpeed(metersPerSecond float64) Speed { return Speed{metersPerSecond: metersPerSecond} }

func (s Speed) MetersPerSecond() float64 { return s.metersPerSecond }

type Acceleration struct{ metersPerSecondSq float64 }

func NewAcceleration(metersPerSecondSq float64) Acceleration {
	return Acceleration{metersPerSecondSq: metersPerSecondSq}
}

func (a Acceleration) MetersPerSecondSq() float64 { return a.metersPerSecondSq }

type Force struct{ newtons float64 }

func NewForce(newtons float64) Force { return Force{newtons: newtons} }

func (f Force) Newtons() float64 { return f.newtons }

type Area struct{ squareMeters float64 }

func NewArea(squareMeters float64) Area { return Area{squareMeters: squareMeters} }

func (a Area) SquareMeters() float64 { return a.squareMeters }

// Volume is stored in liters, not cubic meters.
type Volume struct{ liters float64 }

func NewVolume(liters float64) Volume { return Volume{liters: liters} }

func (v Volume) Liters() float64 { return v.liters }

func (v Volume) cubicMeters() float64 { return v.liters / LitersPerCubicMeter }

type Density struct{ kgPerCubicMeter float64 }

func NewDensity(kgPerCubicMeter float64) Density { return Density{kgPerCubicMeter: kgPerCubicMeter} }

func (d Density) KilogramsPerCubicMeter() float64 { return d.kgPerCubicMeter }

type Energy struct{ joules float64 }

func NewEnergy(joules float64) Energy { return Energy{joules: joules} }

func (e Energy) Joules() float64 { return e.joules }

type Power struct{ watts float64 }

func NewPower(watts float64) Power { return Power{watts: watts} }

func (p Power) Watts() float64 { return p.watts }

type Torque struct{ newtonMeters float64 }

func NewTorque(newtonMeters float64) Torque { return Torque{newtonMeters: newtonMeters} }

func (t Torque) NewtonMeters() float64 { return t.newtonMeters }

type Pressure struct{ pascals float64 }

func NewPressure(pascals float64) Pressure { return Pressure{pascals: pascals} }

func (p Pressure) Pascals() float64 { return p.pascals }

type Voltage struct{ volts float64 }

func NewVoltage(volts float64) Voltage { return Voltage{volts: volts} }

func (v Voltage) Volts() float64 { return v.volts }

type Current struct{ amperes float64 }

func NewCurrent(amperes float64) Current { return Current{amperes: amperes} }

func (c Current) Amperes() float64 { return c.amperes }

type Resistance struct{ ohms float64 }

func NewResistance(ohms float64) Resistance { return Resistance{ohms: ohms} }

func (r Resistance) Ohms() float64 { return r.ohms }
