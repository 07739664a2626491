package units

func AreaFrom(length, width Length) Area {
	return NewArea(length.meters * width.meters)
}

// VolumeFrom returns base·height divided by LitersPerCubicMeter. Note the
// division: it is not the m³ to liter conversion the density formulas use.
func VolumeFrom(base Area, height Length) Volume {
	return NewVolume(base.squareMeters * height.meters / LitersPerCubicMeter)
}

func DensityFrom(mass Mass, volume Volume) Density {
	return NewDensity(mass.kilograms() / volume.cubicMeters())
}

func MassFromDensity(density Density, volume Volume) Mass {
	return NewMass(density.kgPerCubicMeter * volume.cubicMeters() * GramsPerKilogram)
}

func VolumeFromDensity(mass Mass, density Density) Volume {
	return NewVolume(mass.kilograms() / density.kgPerCubicMeter * LitersPerCubicMeter)
}
