package units

// ForceFrom applies F = m·a with the mass converted to kilograms.
func ForceFrom(mass Mass, accel Acceleration) Force {
	return NewForce(mass.kilograms() * accel.metersPerSecondSq)
}

// MassFromForce solves F = m·a for m and returns it in grams.
func MassFromForce(force Force, accel Acceleration) Mass {
	return NewMass(force.newtons / accel.metersPerSecondSq * GramsPerKilogram)
}

func AccelerationFromForce(force Force, mass Mass) Acceleration {
	return NewAcceleration(force.newtons / mass.kilograms())
}

// Momentum returns p = m·v in kg·m/s.
func Momentum(mass Mass, velocity Speed) float64 {
	return mass.kilograms() * velocity.metersPerSecond
}

// KineticEnergy returns ½·m·v² in joules.
func KineticEnergy(mass Mass, velocity Speed) float64 {
	v := velocity.metersPerSecond
	return 0.5 * mass.kilograms() * v * v
}

// PotentialEnergy returns m·g·h in joules. Pass StandardGravity for g near
// the Earth's surface.
func PotentialEnergy(mass Mass, gravity Acceleration, height Length) float64 {
	return mass.kilograms() * gravity.metersPerSecondSq * height.meters
}
