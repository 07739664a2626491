package units

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestSpeedFrom(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		elapsed  float64
		expected float64
	}{
		{"sprint", 100, 9.58, 100 / 9.58},
		{"unit", 1, 1, 1},
		{"stationary", 0, 5, 0},
		{"reverse", -30, 3, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SpeedFrom(NewLength(tt.distance), NewTime(tt.elapsed)).MetersPerSecond()
			if math.Abs(got-tt.expected) > tol {
				t.Errorf("SpeedFrom(%v, %v) = %v, want %v", tt.distance, tt.elapsed, got, tt.expected)
			}
		})
	}
}

func TestDistanceFrom(t *testing.T) {
	got := DistanceFrom(NewSpeed(12.5), NewTime(4)).Meters()
	if got != 50 {
		t.Errorf("expected 50 m, got %f", got)
	}
}

func TestTravelTime(t *testing.T) {
	got := TravelTime(NewLength(42195), NewSpeed(5.86)).Seconds()
	expected := 42195 / 5.86
	if math.Abs(got-expected) > tol {
		t.Errorf("expected %f s, got %f", expected, got)
	}
}

func TestSpeedDistanceRoundTrip(t *testing.T) {
	for _, d := range []float64{0.001, 1, 250, 1e6} {
		for _, s := range []float64{0.01, 1, 60, 3600} {
			elapsed := NewTime(s)
			v := SpeedFrom(NewLength(d), elapsed)
			back := DistanceFrom(v, elapsed).Meters()
			if math.Abs(back-d) > tol*math.Max(1, d) {
				t.Errorf("round trip d=%v t=%v: got %v", d, s, back)
			}
		}
	}
}

func TestAccelerationFrom(t *testing.T) {
	got := AccelerationFrom(NewSpeed(27.78), NewTime(3.2)).MetersPerSecondSq()
	expected := 27.78 / 3.2
	if math.Abs(got-expected) > tol {
		t.Errorf("expected %f, got %f", expected, got)
	}
}

func TestSpeedAfter(t *testing.T) {
	got := SpeedAfter(StandardGravity, NewTime(2)).MetersPerSecond()
	if math.Abs(got-19.6133) > tol {
		t.Errorf("expected 19.6133 m/s, got %f", got)
	}

	a := AccelerationFrom(NewSpeed(30), NewTime(6))
	if v := SpeedAfter(a, NewTime(6)).MetersPerSecond(); math.Abs(v-30) > tol {
		t.Errorf("acceleration round trip: expected 30, got %f", v)
	}
}

func TestKinematics_ZeroDenominator(t *testing.T) {
	if v := SpeedFrom(NewLength(10), NewTime(0)).MetersPerSecond(); !math.IsInf(v, 1) {
		t.Errorf("expected +Inf, got %v", v)
	}
	if v := SpeedFrom(NewLength(-10), NewTime(0)).MetersPerSecond(); !math.IsInf(v, -1) {
		t.Errorf("expected -Inf, got %v", v)
	}
	if v := SpeedFrom(NewLength(0), NewTime(0)).MetersPerSecond(); !math.IsNaN(v) {
		t.Errorf("expected NaN, got %v", v)
	}
	if v := TravelTime(NewLength(1), NewSpeed(0)).Seconds(); !math.IsInf(v, 1) {
		t.Errorf("expected +Inf, got %v", v)
	}
	if v := AccelerationFrom(NewSpeed(0), NewTime(0)).MetersPerSecondSq(); !math.IsNaN(v) {
		t.Errorf("expected NaN, got %v", v)
	}
}

func TestNaNPropagates(t *testing.T) {
	v := SpeedFrom(NewLength(math.NaN()), NewTime(1))
	d := DistanceFrom(v, NewTime(2)).Meters()
	if !math.IsNaN(d) {
		t.Errorf("expected NaN to propagate, got %v", d)
	}
}
