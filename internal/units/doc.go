// Package units provides strongly-typed physical measurements and the
// formulas that relate them.
//
// Every measurement wraps a single float64 held in one canonical unit:
//
//   - [Length]: meters
//   - [Time]: seconds
//   - [Mass]: grams
//   - [Speed], [Acceleration]: m/s and m/s²
//   - [Force], [Energy], [Power], [Torque], [Pressure]: SI base units
//   - [Area]: square meters, [Volume]: liters, [Density]: kg/m³
//   - [Voltage], [Current], [Resistance]: volts, amperes, ohms
//
// Mass and volume are deliberately not SI base units. Derivations that
// need kilograms or cubic meters scale by [GramsPerKilogram] and
// [LitersPerCubicMeter] internally; the stored value never changes unit.
//
// # Example
//
//	d := units.NewLength(100)
//	t := units.NewTime(9.58)
//	v := units.SpeedFrom(d, t)        // 10.438... m/s
//	back := units.DistanceFrom(v, t)  // 100 m
//
// # Floating point
//
// No derivation validates its inputs. Dividing by a zero-valued measurement
// yields +Inf, -Inf or NaN and the value propagates to the caller.
package units
