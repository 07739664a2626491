package calc

import (
	"fmt"
	"sort"

	u "github.com/san-kum/dimcalc/internal/units"
)

type Registry struct {
	formulas map[string]Formula
}

// NewRegistry returns a registry holding every derivation in package units.
func NewRegistry() *Registry {
	r := &Registry{formulas: make(map[string]Formula)}
	for _, f := range builtins() {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *Registry) Register(f Formula) error {
	if _, ok := r.formulas[f.Name]; ok {
		return fmt.Errorf("%s: %w", f.Name, ErrDuplicateFormula)
	}
	r.formulas[f.Name] = f
	return nil
}

func (r *Registry) Get(name string) (Formula, error) {
	f, ok := r.formulas[name]
	if !ok {
		return Formula{}, fmt.Errorf("%s: %w", name, ErrUnknownFormula)
	}
	return f, nil
}

// List returns all formulas sorted by name.
func (r *Registry) List() []Formula {
	out := make([]Formula, 0, len(r.formulas))
	for _, f := range r.formulas {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) Evaluate(name string, args []float64) (Result, error) {
	f, err := r.Get(name)
	if err != nil {
		return Result{}, err
	}
	return f.Apply(args)
}

func builtins() []Formula {
	return []Formula{
		{
			Name: "speed", Description: "distance over time",
			Inputs: []Input{{"distance", Length}, {"time", Time}}, Output: Speed,
			Eval: func(a []float64) float64 {
				return u.SpeedFrom(u.NewLength(a[0]), u.NewTime(a[1])).MetersPerSecond()
			},
		},
		{
			Name: "distance", Description: "speed times time",
			Inputs: []Input{{"speed", Speed}, {"time", Time}}, Output: Length,
			Eval: func(a []float64) float64 {
				return u.DistanceFrom(u.NewSpeed(a[0]), u.NewTime(a[1])).Meters()
			},
		},
		{
			Name: "travel-time", Description: "distance over speed",
			Inputs: []Input{{"distance", Length}, {"speed", Speed}}, Output: Time,
			Eval: func(a []float64) float64 {
				return u.TravelTime(u.NewLength(a[0]), u.NewSpeed(a[1])).Seconds()
			},
		},
		{
			Name: "acceleration", Description: "change in speed over time",
			Inputs: []Input{{"speed", Speed}, {"time", Time}}, Output: Acceleration,
			Eval: func(a []float64) float64 {
				return u.AccelerationFrom(u.NewSpeed(a[0]), u.NewTime(a[1])).MetersPerSecondSq()
			},
		},
		{
			Name: "speed-after", Description: "speed gained under constant acceleration",
			Inputs: []Input{{"acceleration", Acceleration}, {"time", Time}}, Output: Speed,
			Eval: func(a []float64) float64 {
				return u.SpeedAfter(u.NewAcceleration(a[0]), u.NewTime(a[1])).MetersPerSecond()
			},
		},
		{
			Name: "force", Description: "newton's second law",
			Inputs: []Input{{"mass", Mass}, {"acceleration", Acceleration}}, Output: Force,
			Eval: func(a []float64) float64 {
				return u.ForceFrom(u.NewMass(a[0]), u.NewAcceleration(a[1])).Newtons()
			},
		},
		{
			Name: "mass-from-force", Description: "mass that a force accelerates",
			Inputs: []Input{{"force", Force}, {"acceleration", Acceleration}}, Output: Mass,
			Eval: func(a []float64) float64 {
				return u.MassFromForce(u.NewForce(a[0]), u.NewAcceleration(a[1])).Grams()
			},
		},
		{
			Name: "acceleration-from-force", Description: "acceleration a force gives a mass",
			Inputs: []Input{{"force", Force}, {"mass", Mass}}, Output: Acceleration,
			Eval: func(a []float64) float64 {
				return u.AccelerationFromForce(u.NewForce(a[0]), u.NewMass(a[1])).MetersPerSecondSq()
			},
		},
		{
			Name: "area", Description: "rectangle area",
			Inputs: []Input{{"length", Length}, {"width", Length}}, Output: Area,
			Eval: func(a []float64) float64 {
				return u.AreaFrom(u.NewLength(a[0]), u.NewLength(a[1])).SquareMeters()
			},
		},
		{
			Name: "volume", Description: "prism volume",
			Inputs: []Input{{"area", Area}, {"height", Length}}, Output: Volume,
			Eval: func(a []float64) float64 {
				return u.VolumeFrom(u.NewArea(a[0]), u.NewLength(a[1])).Liters()
			},
		},
		{
			Name: "density", Description: "mass per volume",
			Inputs: []Input{{"mass", Mass}, {"volume", Volume}}, Output: Density,
			Eval: func(a []float64) float64 {
				return u.DensityFrom(u.NewMass(a[0]), u.NewVolume(a[1])).KilogramsPerCubicMeter()
			},
		},
		{
			Name: "mass-from-density", Description: "mass of a volume of material",
			Inputs: []Input{{"density", Density}, {"volume", Volume}}, Output: Mass,
			Eval: func(a []float64) float64 {
				return u.MassFromDensity(u.NewDensity(a[0]), u.NewVolume(a[1])).Grams()
			},
		},
		{
			Name: "volume-from-density", Description: "volume occupied by a mass",
			Inputs: []Input{{"mass", Mass}, {"density", Density}}, Output: Volume,
			Eval: func(a []float64) float64 {
				return u.VolumeFromDensity(u.NewMass(a[0]), u.NewDensity(a[1])).Liters()
			},
		},
		{
			Name: "power", Description: "energy over time",
			Inputs: []Input{{"energy", Energy}, {"time", Time}}, Output: Power,
			Eval: func(a []float64) float64 {
				return u.PowerFrom(u.NewEnergy(a[0]), u.NewTime(a[1])).Watts()
			},
		},
		{
			Name: "energy", Description: "power times time",
			Inputs: []Input{{"power", Power}, {"time", Time}}, Output: Energy,
			Eval: func(a []float64) float64 {
				return u.EnergyFrom(u.NewPower(a[0]), u.NewTime(a[1])).Joules()
			},
		},
		{
			Name: "work", Description: "force along a distance",
			Inputs: []Input{{"force", Force}, {"distance", Length}}, Output: Energy,
			Eval: func(a []float64) float64 {
				return u.WorkDone(u.NewForce(a[0]), u.NewLength(a[1])).Joules()
			},
		},
		{
			Name: "torque", Description: "force on a lever arm",
			Inputs: []Input{{"force", Force}, {"lever-arm", Length}}, Output: Torque,
			Eval: func(a []float64) float64 {
				return u.TorqueFrom(u.NewForce(a[0]), u.NewLength(a[1])).NewtonMeters()
			},
		},
		{
			Name: "pressure", Description: "force over area",
			Inputs: []Input{{"force", Force}, {"area", Area}}, Output: Pressure,
			Eval: func(a []float64) float64 {
				return u.PressureFrom(u.NewForce(a[0]), u.NewArea(a[1])).Pascals()
			},
		},
		{
			Name: "force-from-pressure", Description: "pressure times area",
			Inputs: []Input{{"pressure", Pressure}, {"area", Area}}, Output: Force,
			Eval: func(a []float64) float64 {
				return u.ForceFromPressure(u.NewPressure(a[0]), u.NewArea(a[1])).Newtons()
			},
		},
		{
			Name: "voltage", Description: "ohm's law, V = I·R",
			Inputs: []Input{{"current", Current}, {"resistance", Resistance}}, Output: Voltage,
			Eval: func(a []float64) float64 {
				return u.VoltageFrom(u.NewCurrent(a[0]), u.NewResistance(a[1])).Volts()
			},
		},
		{
			Name: "current", Description: "ohm's law, I = V/R",
			Inputs: []Input{{"voltage", Voltage}, {"resistance", Resistance}}, Output: Current,
			Eval: func(a []float64) float64 {
				return u.CurrentFrom(u.NewVoltage(a[0]), u.NewResistance(a[1])).Amperes()
			},
		},
		{
			Name: "resistance", Description: "ohm's law, R = V/I",
			Inputs: []Input{{"voltage", Voltage}, {"current", Current}}, Output: Resistance,
			Eval: func(a []float64) float64 {
				return u.ResistanceFrom(u.NewVoltage(a[0]), u.NewCurrent(a[1])).Ohms()
			},
		},
		{
			Name: "electric-power", Description: "P = V·I",
			Inputs: []Input{{"voltage", Voltage}, {"current", Current}}, Output: Power,
			Eval: func(a []float64) float64 {
				return u.ElectricPower(u.NewVoltage(a[0]), u.NewCurrent(a[1])).Watts()
			},
		},
		{
			Name: "current-from-power", Description: "I = P/V",
			Inputs: []Input{{"power", Power}, {"voltage", Voltage}}, Output: Current,
			Eval: func(a []float64) float64 {
				return u.CurrentFromPower(u.NewPower(a[0]), u.NewVoltage(a[1])).Amperes()
			},
		},
		{
			Name: "voltage-from-power", Description: "V = P/I",
			Inputs: []Input{{"power", Power}, {"current", Current}}, Output: Voltage,
			Eval: func(a []float64) float64 {
				return u.VoltageFromPower(u.NewPower(a[0]), u.NewCurrent(a[1])).Volts()
			},
		},
		{
			Name: "momentum", Description: "linear momentum",
			Inputs: []Input{{"mass", Mass}, {"speed", Speed}}, Output: Scalar, ScalarUnit: "kg·m/s",
			Eval: func(a []float64) float64 {
				return u.Momentum(u.NewMass(a[0]), u.NewSpeed(a[1]))
			},
		},
		{
			Name: "kinetic-energy", Description: "½·m·v²",
			Inputs: []Input{{"mass", Mass}, {"speed", Speed}}, Output: Scalar, ScalarUnit: "J",
			Eval: func(a []float64) float64 {
				return u.KineticEnergy(u.NewMass(a[0]), u.NewSpeed(a[1]))
			},
		},
		{
			Name: "potential-energy", Description: "gravitational m·g·h",
			Inputs: []Input{{"mass", Mass}, {"gravity", Acceleration}, {"height", Length}}, Output: Scalar, ScalarUnit: "J",
			Eval: func(a []float64) float64 {
				return u.PotentialEnergy(u.NewMass(a[0]), u.NewAcceleration(a[1]), u.NewLength(a[2]))
			},
		},
	}
}
