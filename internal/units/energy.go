package units

func PowerFrom(energy Energy, elapsed Time) Power {
	return NewPower(energy.joules / elapsed.seconds)
}

func EnergyFrom(power Power, elapsed Time) Energy {
	return NewEnergy(power.watts * elapsed.seconds)
}

// WorkDone assumes the force acts along the whole distance.
func WorkDone(force Force, distance Length) Energy {
	return NewEnergy(force.newtons * distance.meters)
}

// TorqueFrom assumes the force is perpendicular to the lever arm.
func TorqueFrom(force Force, leverArm Length) Torque {
	return NewTorque(force.newtons * leverArm.meters)
}

func PressureFrom(force Force, area Area) Pressure {
	return NewPressure(force.newtons / area.squareMeters)
}

func ForceFromPressure(pressure Pressure, area Area) Force {
	return NewForce(pressure.pascals * area.squareMeters)
}
