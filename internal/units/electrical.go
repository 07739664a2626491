package units

// Ohm's law: V = I·R.

func VoltageFrom(current Current, resistance Resistance) Voltage {
	return NewVoltage(current.amperes * resistance.ohms)
}

func CurrentFrom(voltage Voltage, resistance Resistance) Current {
	return NewCurrent(voltage.volts / resistance.ohms)
}

func ResistanceFrom(voltage Voltage, current Current) Resistance {
	return NewResistance(voltage.volts / current.amperes)
}

// Electrical power: P = V·I.

func ElectricPower(voltage Voltage, current Current) Power {
	return NewPower(voltage.volts * current.amperes)
}

func CurrentFromPower(power Power, voltage Voltage) Current {
	return NewCurrent(power.watts / voltage.volts)
}

func VoltageFromPower(power Power, current Current) Voltage {
	return NewVoltage(power.watts / current.amperes)
}
