package viz

import (
	"math"
	"strconv"
)

// FormatValue renders v with precision significant digits followed by unit.
func FormatValue(v float64, unit string, precision int) string {
	s := FormatNumber(v, precision)
	if unit == "" {
		return s
	}
	return s + " " + unit
}

func FormatNumber(v float64, precision int) string {
	if precision <= 0 {
		precision = -1
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteRange(values []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !isFinite(v) {
			continue
		}
		lo, hi, ok = math.Min(lo, v), math.Max(hi, v), true
	}
	return lo, hi, ok
}
