package calc

type Quantity int

const (
	Scalar Quantity = iota
	Length
	Time
	Mass
	Speed
	Acceleration
	Force
	Area
	Volume
	Density
	Energy
	Power
	Torque
	Pressure
	Voltage
	Current
	Resistance
)

var quantityInfo = map[Quantity]struct{ name, unit string }{
	Scalar:       {"scalar", ""},
	Length:       {"length", "m"},
	Time:         {"time", "s"},
	Mass:         {"mass", "g"},
	Speed:        {"speed", "m/s"},
	Acceleration: {"acceleration", "m/s²"},
	Force:        {"force", "N"},
	Area:         {"area", "m²"},
	Volume:       {"volume", "L"},
	Density:      {"density", "kg/m³"},
	Energy:       {"energy", "J"},
	Power:        {"power", "W"},
	Torque:       {"torque", "N·m"},
	Pressure:     {"pressure", "Pa"},
	Voltage:      {"voltage", "V"},
	Current:      {"current", "A"},
	Resistance:   {"resistance", "Ω"},
}

func (q Quantity) String() string {
	if info, ok := quantityInfo[q]; ok {
		return info.name
	}
	return "unknown"
}

// Unit returns the symbol of the canonical unit values of q are held in.
func (q Quantity) Unit() string {
	return quantityInfo[q].unit
}
